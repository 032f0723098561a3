package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/league/config"
	"github.com/DhavalSuthar-24/league/internal/user"
)

func RegisterAuthRoutes(public, protected *gin.RouterGroup, users user.UserRepository, jwt config.JWTConfig) {
	ac := NewAuthController(users, jwt)

	authPublic := public.Group("/auth")
	{
		authPublic.POST("/register", ac.Register)
		authPublic.POST("/login", ac.Login)
		authPublic.POST("/refresh", ac.RefreshToken)
	}

	protected.GET("/auth/me", ac.Me)
}
