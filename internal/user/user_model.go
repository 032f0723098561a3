package user

import "gorm.io/gorm"

// User is an operator allowed to modify league data.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}
