package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithMemoryDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 100, cfg.HTTP.MaxPageSize)
	assert.Equal(t, 24*time.Hour, cfg.Session.ViewWindow)
	assert.Equal(t, "SESSION", cfg.Session.CookieName)
	assert.Equal(t, []string{"http://localhost:4444"}, cfg.HTTP.AllowedOrigins)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadRequiresDSNForPostgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/codearea")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("MAX_PAGE_SIZE", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("VIEW_WINDOW", "90m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 25, cfg.HTTP.MaxPageSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 90*time.Minute, cfg.Session.ViewWindow)
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := Cfg{
		DB:      DBCfg{Driver: DriverMemory},
		Session: SessionCfg{CookieName: "SESSION", ViewWindow: time.Hour},
		HTTP:    HTTPCfg{MaxPageSize: 10},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.DB.Driver = "mysql"
	assert.Error(t, bad.Validate())

	bad = base
	bad.HTTP.MaxPageSize = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.Session.ViewWindow = 0
	assert.Error(t, bad.Validate())
}
