package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/league/internal/database"
)

const (
	envPrefix       = "LEAGUE_"
	configFileEnv   = "LEAGUE_CONFIG"
	defaultAccess   = "your-very-strong-access-secret"
	defaultRefresh  = "your-very-strong-refresh-secret"
	defaultPassword = "password"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type AppConfig struct {
	Env         string `koanf:"env"`
	Port        string `koanf:"port"`
	FrontendURL string `koanf:"frontend_url"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	SeedDir     string `koanf:"seed_dir"`
}

type JWTConfig struct {
	AccessTokenSecret        string `koanf:"access_token_secret"`
	AccessTokenExpiryMinutes int    `koanf:"access_token_expiry_minutes"`
	RefreshTokenSecret       string `koanf:"refresh_token_secret"`
	RefreshTokenExpiryDays   int    `koanf:"refresh_token_expiry_days"`
}

type RosterConfig struct {
	// MaxPerGender caps concurrently active players of one gender in a match.
	MaxPerGender int `koanf:"max_per_gender"`
	// QuotaOnReactivate also runs the gender quota when a substitution
	// reactivates a player that already has a roster entry.
	QuotaOnReactivate bool `koanf:"quota_on_reactivate"`
}

type Config struct {
	App    AppConfig       `koanf:"app"`
	DB     database.Config `koanf:"db"`
	JWT    JWTConfig       `koanf:"jwt"`
	Roster RosterConfig    `koanf:"roster"`
}

// Global DB instance, set by Initialize.
var DB *gorm.DB

var (
	appConfig *Config
	once      sync.Once
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:         "development",
			Port:        "8088",
			FrontendURL: "http://localhost:3000",
			LogLevel:    "info",
			LogFormat:   "text",
		},
		DB: database.Config{
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Password:        defaultPassword,
			Name:            "league_db",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessTokenSecret:        defaultAccess,
			AccessTokenExpiryMinutes: 5,
			RefreshTokenSecret:       defaultRefresh,
			RefreshTokenExpiryDays:   7,
		},
		Roster: RosterConfig{
			MaxPerGender: 4,
		},
	}
}

// LoadConfig layers defaults, an optional YAML file named by LEAGUE_CONFIG
// and LEAGUE_* environment variables. A .env file, when present, is loaded
// into the environment first.
//
// Environment keys map section and field with a double underscore:
// LEAGUE_DB__HOST -> db.host, LEAGUE_ROSTER__MAX_PER_GENDER -> roster.max_per_gender.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on process environment")
	}

	k := koanf.New(".")
	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(s, "__", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWT.AccessTokenSecret == defaultAccess || cfg.JWT.RefreshTokenSecret == defaultRefresh {
		slog.Warn("using default JWT secrets; set LEAGUE_JWT__ACCESS_TOKEN_SECRET and LEAGUE_JWT__REFRESH_TOKEN_SECRET")
	}
	if cfg.DB.Password == defaultPassword && cfg.App.Env == "production" {
		slog.Warn("using default DB password in production")
	}
	return cfg, nil
}

// Validate checks the settings the service cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.App.Port == "":
		return fmt.Errorf("%w: app.port must not be empty", ErrInvalidConfig)
	case c.Roster.MaxPerGender < 1:
		return fmt.Errorf("%w: roster.max_per_gender must be positive", ErrInvalidConfig)
	case c.JWT.AccessTokenExpiryMinutes < 1:
		return fmt.Errorf("%w: jwt.access_token_expiry_minutes must be positive", ErrInvalidConfig)
	case c.JWT.RefreshTokenExpiryDays < 1:
		return fmt.Errorf("%w: jwt.refresh_token_expiry_days must be positive", ErrInvalidConfig)
	case c.DB.Host == "" || c.DB.Name == "":
		return fmt.Errorf("%w: db.host and db.name are required", ErrInvalidConfig)
	}
	return nil
}

// Initialize loads the configuration and connects to the database, once.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = cfg

		db, err := database.Connect(cfg.DB, cfg.App.Env == "development")
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
		DB = db
	})
	return loadErr
}

// GetConfig returns the loaded configuration. Initialize must have succeeded.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded; call config.Initialize() first")
	}
	return appConfig
}
