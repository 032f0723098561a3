package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/config"
	"github.com/DhavalSuthar-24/league/internal/auth"
	"github.com/DhavalSuthar-24/league/internal/event"
	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/middleware"
	"github.com/DhavalSuthar-24/league/internal/notification"
	"github.com/DhavalSuthar-24/league/internal/player"
	"github.com/DhavalSuthar-24/league/internal/roster"
	"github.com/DhavalSuthar-24/league/internal/season"
	"github.com/DhavalSuthar-24/league/internal/team"
	"github.com/DhavalSuthar-24/league/internal/user"
	"github.com/DhavalSuthar-24/league/pkg/metrics"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB, m *metrics.Manager) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(), m.GinMiddleware())
	r.Use(cors.New(corsConfig(cfg.App.FrontendURL)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := user.NewUserRepository(db)

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, users))

	auth.RegisterAuthRoutes(api, protected, users, cfg.JWT)
	season.SeasonRoutes(api, protected, db)
	team.TeamRoutes(api, protected, db)
	player.PlayerRoutes(api, protected, db)
	match.MatchRoutes(api, protected, db)
	notification.NotificationRoutes(api, protected, db)
	event.EventRoutes(api, protected, db)

	engine := roster.NewEngine(roster.NewGormStore(db), roster.Config{
		MaxPerGender:      cfg.Roster.MaxPerGender,
		QuotaOnReactivate: cfg.Roster.QuotaOnReactivate,
	}, m)
	roster.RegisterRosterRoutes(api, protected, roster.NewRosterController(engine))

	return r
}

func corsConfig(frontendURL string) cors.Config {
	c := cors.DefaultConfig()
	if frontendURL == "" || frontendURL == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = []string{frontendURL}
		c.AllowCredentials = true
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	c.MaxAge = 12 * time.Hour
	return c
}
