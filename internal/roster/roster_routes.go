package roster

import (
	"github.com/gin-gonic/gin"
)

func RegisterRosterRoutes(public, protected *gin.RouterGroup, rc *RosterController) {
	public.GET("/matches/:match_id/players", rc.GetMatchPlayers)
	public.GET("/matches/:match_id/substitutions", rc.GetMatchSubstitutions)
	public.GET("/substitutions", rc.GetSubstitutions)
	public.GET("/substitutions/:substitution_id", rc.GetSubstitution)

	protected.POST("/matches/:match_id/players", rc.AddMatchPlayer)
	protected.POST("/matches/:match_id/substitute", rc.Substitute)
	protected.POST("/substitutions", rc.AddSubstitution)
	protected.PUT("/substitutions/:substitution_id", rc.EditSubstitution)
}
