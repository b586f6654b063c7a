package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/drivein")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, time.Minute, cfg.OTPCooldown)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "pt-BR", cfg.TMDBLanguage)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/drivein")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestConnectRedisDisabled(t *testing.T) {
	client, err := ConnectRedis(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}
