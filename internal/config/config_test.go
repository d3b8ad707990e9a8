package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.True(t, cfg.LocalAuthEnabled)
	assert.Equal(t, "images", cfg.StorageBucket)
}

func TestParseNormalizes(t *testing.T) {
	t.Setenv("REVENUE_TIMEZONE_POLICY", " Store ")
	t.Setenv("CURRENCY_CODE", "eur")
	t.Setenv("STORAGE_URL", "https://project.supabase.co/storage/v1/")
	t.Setenv("LOCAL_AUTH_ENABLED", "false")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "store", cfg.RevenueTimezonePolicy)
	assert.Equal(t, "EUR", cfg.CurrencyCode)
	assert.Equal(t, "https://project.supabase.co/storage/v1", cfg.StorageURL)
	assert.False(t, cfg.LocalAuthEnabled)
}

func TestParseRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("REVENUE_TIMEZONE_POLICY", "server")

	_, err := Parse()
	assert.ErrorContains(t, err, "REVENUE_TIMEZONE_POLICY")
}
