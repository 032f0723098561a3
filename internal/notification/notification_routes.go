package notification

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NotificationRoutes(public, protected *gin.RouterGroup, db *gorm.DB) {
	RegisterNotificationRoutes(public, protected, NewNotificationController(NewNotificationRepository(db)))
}

func RegisterNotificationRoutes(public, protected *gin.RouterGroup, nc *NotificationController) {
	public.GET("/notifications", nc.List)
	protected.POST("/notifications", nc.Create)
	protected.PUT("/notifications/:notification_id", nc.Update)
	protected.DELETE("/notifications/:notification_id", nc.Delete)
}
