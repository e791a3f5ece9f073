package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type AppCfg struct {
	Env      string
	Port     string
	LogLevel string
}

type DBCfg struct {
	Driver         string
	DSN            string
	AutoMigrate    bool
	ConnectRetries int
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}

type SessionCfg struct {
	CookieName string
	ViewWindow time.Duration
}

type HTTPCfg struct {
	AllowedOrigins []string
	MaxPageSize    int
}

type Cfg struct {
	App     AppCfg
	DB      DBCfg
	Redis   RedisCfg
	Session SessionCfg
	HTTP    HTTPCfg
}

// Load reads .env (if present) and the process environment.
func Load() (Cfg, error) {
	// a missing .env is fine; real deployments use the environment
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Cfg{
		App: AppCfg{
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBCfg{
			Driver:         strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			DSN:            v.GetString("DB_DSN"),
			AutoMigrate:    v.GetBool("DB_AUTO_MIGRATE"),
			ConnectRetries: v.GetInt("CONNECT_RETRIES"),
		},
		Redis: RedisCfg{
			Addr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionCfg{
			CookieName: v.GetString("SESSION_COOKIE"),
			ViewWindow: v.GetDuration("VIEW_WINDOW"),
		},
		HTTP: HTTPCfg{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			MaxPageSize:    v.GetInt("MAX_PAGE_SIZE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Cfg{}, err
	}
	return cfg, nil
}

// MustLoad is Load for process startup.
func MustLoad() Cfg {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("CONNECT_RETRIES", 5)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_COOKIE", "SESSION")
	v.SetDefault("VIEW_WINDOW", "24h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4444")
	v.SetDefault("MAX_PAGE_SIZE", 100)
}

// Validate fails fast on settings the service cannot run with.
func (c Cfg) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.DB.Driver)
	}
	if c.HTTP.MaxPageSize <= 0 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", c.HTTP.MaxPageSize)
	}
	if c.Session.ViewWindow <= 0 {
		return fmt.Errorf("VIEW_WINDOW must be positive, got %s", c.Session.ViewWindow)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
