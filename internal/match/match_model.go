package match

import (
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/season"
	"github.com/DhavalSuthar-24/league/internal/team"
)

// Match is a fixture between two teams inside a season. Date is YYYYMMDD,
// start and end times are HHMMSS.
type Match struct {
	gorm.Model
	Date        string         `json:"match_date" gorm:"type:char(8);not null;index"`
	StartTime   string         `json:"match_start_time" gorm:"type:char(6)"`
	EndTime     string         `json:"match_end_time" gorm:"type:char(6)"`
	SeasonID    uint           `json:"match_season" gorm:"index;not null"`
	Season      *season.Season `json:"-" gorm:"foreignKey:SeasonID"`
	TeamAID     uint           `json:"team_a_id" gorm:"not null"`
	TeamA       *team.Team     `json:"-" gorm:"foreignKey:TeamAID"`
	TeamBID     uint           `json:"team_b_id" gorm:"not null"`
	TeamB       *team.Team     `json:"-" gorm:"foreignKey:TeamBID"`
	TeamAPoints int            `json:"team_a_points" gorm:"not null;default:0"`
	TeamBPoints int            `json:"team_b_points" gorm:"not null;default:0"`
}

// Summary is a match joined with both team names.
type Summary struct {
	ID          uint   `json:"match_id"`
	Date        string `json:"match_date"`
	StartTime   string `json:"match_start_time"`
	EndTime     string `json:"match_end_time"`
	SeasonID    uint   `json:"match_season"`
	TeamAID     uint   `json:"team_a_id"`
	TeamAName   string `json:"team_a_name"`
	TeamBID     uint   `json:"team_b_id"`
	TeamBName   string `json:"team_b_name"`
	TeamAPoints int    `json:"team_a_points"`
	TeamBPoints int    `json:"team_b_points"`
}

// TeamScore is one row of a season highscore table.
type TeamScore struct {
	TeamID    uint   `json:"team_id"`
	TeamName  string `json:"team_name"`
	TeamScore int64  `json:"team_score"`
}

type CreateMatchRequest struct {
	Date        string `json:"match_date" binding:"required,yyyymmdd"`
	StartTime   string `json:"match_start_time" binding:"omitempty,hhmmss"`
	EndTime     string `json:"match_end_time" binding:"omitempty,hhmmss"`
	SeasonID    uint   `json:"match_season" binding:"required"`
	TeamAID     uint   `json:"team_a_id" binding:"required"`
	TeamBID     uint   `json:"team_b_id" binding:"required,nefield=TeamAID"`
	TeamAPoints int    `json:"team_a_points" binding:"min=0"`
	TeamBPoints int    `json:"team_b_points" binding:"min=0"`
}

type UpdateMatchRequest struct {
	Date        *string `json:"match_date" binding:"omitempty,yyyymmdd"`
	StartTime   *string `json:"match_start_time" binding:"omitempty,hhmmss"`
	EndTime     *string `json:"match_end_time" binding:"omitempty,hhmmss"`
	SeasonID    *uint   `json:"match_season" binding:"omitempty,min=1"`
	TeamAID     *uint   `json:"team_a_id" binding:"omitempty,min=1"`
	TeamBID     *uint   `json:"team_b_id" binding:"omitempty,min=1"`
	TeamAPoints *int    `json:"team_a_points" binding:"omitempty,min=0"`
	TeamBPoints *int    `json:"team_b_points" binding:"omitempty,min=0"`
}
