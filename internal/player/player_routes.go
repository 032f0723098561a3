package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func PlayerRoutes(public, protected *gin.RouterGroup, db *gorm.DB) {
	RegisterPlayerRoutes(public, protected, NewPlayerController(NewPlayerRepository(db)))
}

func RegisterPlayerRoutes(public, protected *gin.RouterGroup, pc *PlayerController) {
	public.GET("/players", pc.GetPlayers)
	public.GET("/players/:player_id", pc.GetPlayer)

	protected.POST("/players", pc.CreatePlayer)
	protected.PUT("/players/:player_id", pc.UpdatePlayer)
	protected.DELETE("/players/:player_id", pc.DeletePlayer)
}
