package event

import (
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/player"
)

// Event is something that happened during a match: a goal, a card, an
// assist. Player2 is optional (e.g. the assisting player).
type Event struct {
	gorm.Model
	MatchID   uint           `json:"match_id" gorm:"index;not null"`
	Match     *match.Match   `json:"-" gorm:"foreignKey:MatchID"`
	Player1ID uint           `json:"event_player_1" gorm:"not null"`
	Player1   *player.Player `json:"-" gorm:"foreignKey:Player1ID"`
	Player2ID *uint          `json:"event_player_2"`
	Player2   *player.Player `json:"-" gorm:"foreignKey:Player2ID"`
	Type      string         `json:"event_type" gorm:"type:varchar(50);not null"`
	Value     int            `json:"event_value" gorm:"not null;default:0"`
}

type CreateEventRequest struct {
	MatchID   uint   `json:"match_id" binding:"required"`
	Player1ID uint   `json:"event_player_1" binding:"required"`
	Player2ID *uint  `json:"event_player_2" binding:"omitempty,min=1"`
	Type      string `json:"event_type" binding:"required,max=50"`
	Value     int    `json:"event_value"`
}

type UpdateEventRequest struct {
	Player1ID *uint   `json:"event_player_1" binding:"omitempty,min=1"`
	Player2ID *uint   `json:"event_player_2" binding:"omitempty,min=1"`
	Type      *string `json:"event_type" binding:"omitempty,min=1,max=50"`
	Value     *int    `json:"event_value"`
}
