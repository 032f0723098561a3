package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes. Mutations go through auth.
func TeamRoutes(public, protected *gin.RouterGroup, db *gorm.DB) {
	RegisterTeamRoutes(public, protected, NewTeamController(NewTeamRepository(db)))
}

// RegisterTeamRoutes wires tc onto the given groups.
func RegisterTeamRoutes(public, protected *gin.RouterGroup, tc *TeamController) {
	public.GET("/teams", tc.GetAllTeams)
	public.GET("/teams/:team_id", tc.GetTeamByID)

	protected.POST("/teams", tc.CreateTeam)
	protected.PUT("/teams/:team_id", tc.UpdateTeam)
	protected.DELETE("/teams/:team_id", tc.DeleteTeam)
}
