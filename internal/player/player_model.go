package player

import (
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/team"
)

// Gender is the category the match gender quota counts.
type Gender string

const (
	Male      Gender = "Male"
	Female    Gender = "Female"
	Nonbinary Gender = "Nonbinary"
)

// Genders lists every accepted gender, in display order.
var Genders = []Gender{Male, Female, Nonbinary}

// Valid reports whether g is one of the accepted genders.
func (g Gender) Valid() bool {
	switch g {
	case Male, Female, Nonbinary:
		return true
	}
	return false
}

// Player belongs to exactly one team.
type Player struct {
	gorm.Model
	Name   string     `json:"player_name" gorm:"not null"`
	Gender Gender     `json:"player_gender" gorm:"type:varchar(16);not null;index"`
	TeamID uint       `json:"player_team" gorm:"index;not null"`
	Team   *team.Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

type CreatePlayerRequest struct {
	Name   string `json:"player_name" binding:"required,min=1,max=100"`
	Gender Gender `json:"player_gender" binding:"required,oneof=Male Female Nonbinary"`
	TeamID uint   `json:"player_team" binding:"required"`
}

type UpdatePlayerRequest struct {
	Name   *string `json:"player_name" binding:"omitempty,min=1,max=100"`
	Gender *Gender `json:"player_gender" binding:"omitempty,oneof=Male Female Nonbinary"`
	TeamID *uint   `json:"player_team" binding:"omitempty,min=1"`
}
