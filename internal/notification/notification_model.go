package notification

import "gorm.io/gorm"

// Notification is a league-wide announcement.
type Notification struct {
	gorm.Model
	Title       string `json:"notification_title" gorm:"not null"`
	Description string `json:"notification_description"`
}

type CreateNotificationRequest struct {
	Title       string `json:"notification_title" binding:"required,max=200"`
	Description string `json:"notification_description" binding:"max=2000"`
}

type UpdateNotificationRequest struct {
	Title       *string `json:"notification_title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"notification_description" binding:"omitempty,max=2000"`
}
