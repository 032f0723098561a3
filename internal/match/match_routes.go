package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/season"
)

// MatchRoutes sets up all match-related routes, including the season views.
func MatchRoutes(public, protected *gin.RouterGroup, db *gorm.DB) {
	mc := NewMatchController(NewGormMatchRepository(db), season.NewSeasonRepository(db))
	RegisterMatchRoutes(public, protected, mc)
}

func RegisterMatchRoutes(public, protected *gin.RouterGroup, mc *MatchController) {
	public.GET("/matches", mc.GetMatches)
	public.GET("/matches/:match_id", mc.GetMatch)
	public.GET("/seasons/:season_id/matches", mc.GetSeasonMatches)
	public.GET("/seasons/:season_id/highscore", mc.GetSeasonHighscore)

	protected.POST("/matches", mc.CreateMatch)
	protected.PUT("/matches/:match_id", mc.UpdateMatch)
	protected.DELETE("/matches/:match_id", mc.DeleteMatch)
}
