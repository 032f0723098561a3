// team/team_model.go
package team

import "gorm.io/gorm"

// Team is a league team. Players reference it through their TeamID.
type Team struct {
	gorm.Model
	Name string `json:"team_name" gorm:"uniqueIndex;not null"`
}

type CreateTeamRequest struct {
	Name string `json:"team_name" binding:"required,min=1,max=100"`
}

type UpdateTeamRequest struct {
	Name *string `json:"team_name" binding:"omitempty,min=1,max=100"`
}
