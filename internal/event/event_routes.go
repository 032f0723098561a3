package event

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func EventRoutes(public, protected *gin.RouterGroup, db *gorm.DB) {
	RegisterEventRoutes(public, protected, NewEventController(NewEventRepository(db)))
}

func RegisterEventRoutes(public, protected *gin.RouterGroup, ec *EventController) {
	public.GET("/events", ec.List)
	public.GET("/events/:event_id", ec.Get)
	public.GET("/matches/:match_id/events", ec.ListByMatch)

	protected.POST("/events", ec.Create)
	protected.PUT("/events/:event_id", ec.Update)
	protected.DELETE("/events/:event_id", ec.Delete)
}
