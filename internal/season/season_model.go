package season

import "gorm.io/gorm"

// Season groups matches between a start and end date (YYYYMMDD).
type Season struct {
	gorm.Model
	Title     string `json:"season_title" gorm:"not null"`
	StartDate string `json:"season_start_date" gorm:"type:char(8);not null"`
	EndDate   string `json:"season_end_date" gorm:"type:char(8);not null"`
}

type CreateSeasonRequest struct {
	Title     string `json:"season_title" binding:"required,max=200"`
	StartDate string `json:"season_start_date" binding:"required,yyyymmdd"`
	EndDate   string `json:"season_end_date" binding:"required,yyyymmdd"`
}

type UpdateSeasonRequest struct {
	Title     *string `json:"season_title" binding:"omitempty,max=200"`
	StartDate *string `json:"season_start_date" binding:"omitempty,yyyymmdd"`
	EndDate   *string `json:"season_end_date" binding:"omitempty,yyyymmdd"`
}
