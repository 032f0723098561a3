package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DhavalSuthar-24/league/config"
	_ "github.com/DhavalSuthar-24/league/docs"
	"github.com/DhavalSuthar-24/league/internal/event"
	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/notification"
	"github.com/DhavalSuthar-24/league/internal/player"
	"github.com/DhavalSuthar-24/league/internal/roster"
	"github.com/DhavalSuthar-24/league/internal/season"
	"github.com/DhavalSuthar-24/league/internal/seed"
	"github.com/DhavalSuthar-24/league/internal/team"
	"github.com/DhavalSuthar-24/league/internal/user"
	"github.com/DhavalSuthar-24/league/pkg/logger"
	"github.com/DhavalSuthar-24/league/pkg/metrics"
	"github.com/DhavalSuthar-24/league/pkg/validator"
	"github.com/DhavalSuthar-24/league/routes"
)

// @title League REST API
// @version 1.0
// @description Seasons, teams, players, matches and the match roster engine.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	cfg := config.GetConfig()
	logger.Setup(cfg.App.LogLevel, cfg.App.LogFormat)

	if err := validator.Register(); err != nil {
		slog.Error("failed to register validators", "error", err)
		os.Exit(1)
	}

	err := config.DB.AutoMigrate(
		&user.User{},
		&season.Season{}, &team.Team{}, &player.Player{},
		&match.Match{}, &notification.Notification{}, &event.Event{},
		&roster.Entry{}, &roster.Substitution{},
	)
	if err != nil {
		slog.Error("AutoMigrate failed", "error", err)
		os.Exit(1)
	}
	slog.Info("AutoMigrate successful")

	if cfg.App.SeedDir != "" {
		if err := seed.Load(context.Background(), config.DB, cfg.App.SeedDir); err != nil {
			slog.Error("seeding failed", "error", err, "dir", cfg.App.SeedDir)
			os.Exit(1)
		}
	}

	r := routes.SetupRoutes(cfg, config.DB, metrics.NewManager())

	slog.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
