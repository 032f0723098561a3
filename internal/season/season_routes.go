package season

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SeasonRoutes(public, protected *gin.RouterGroup, db *gorm.DB) {
	RegisterSeasonRoutes(public, protected, NewSeasonController(NewSeasonRepository(db)))
}

func RegisterSeasonRoutes(public, protected *gin.RouterGroup, sc *SeasonController) {
	public.GET("/seasons", sc.GetSeasons)
	public.GET("/seasons/:season_id", sc.GetSeason)

	protected.POST("/seasons", sc.CreateSeason)
	protected.PUT("/seasons/:season_id", sc.UpdateSeason)
	protected.DELETE("/seasons/:season_id", sc.DeleteSeason)
}
