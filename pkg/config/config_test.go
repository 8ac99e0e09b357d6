package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := config.FromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL())
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORS.Origins)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled())
}

func TestValidate_SinSecretoFalla(t *testing.T) {
	cfg := config.FromViper(viper.New())

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE_DRIVER", "mongo")

	err := config.FromViper(v).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("HTTP_PORT", "9090")
	v.Set("JWT_EXPIRATION_MINUTES", "30")
	v.Set("CORS_ORIGIN", "https://app.example.com, https://*.example.com ,")
	v.Set("REDIS_ADDR", "localhost:6379")

	cfg := config.FromViper(v)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, []string{"https://app.example.com", "https://*.example.com"}, cfg.CORS.Origins)
	assert.True(t, cfg.Redis.Enabled())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "smartops", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/smartops?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestValidate_PoolInconsistente(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("DB_MAX_CONNS", "2")
	v.Set("DB_MIN_CONNS", "5")

	err := config.FromViper(v).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}
