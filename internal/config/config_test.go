package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 15.0, cfg.GeofenceRadiusMeters)
	assert.Equal(t, "60", cfg.HandlingCharge().String())
	assert.Equal(t, "3", cfg.TaxPercent().String())
	assert.Equal(t, "15", cfg.DiscountLimit().String())
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL())
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL())
	assert.Equal(t, 5, cfg.OTPMaxAttempts)
	assert.Equal(t, "estimates", cfg.EstimatesTable)
	assert.False(t, cfg.PaymentGatewayMock)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("GEOFENCE_RADIUS_METERS", "25.5")
	t.Setenv("MAX_DISCOUNT_PERCENT", "10")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("COMPANY_LATITUDE", "22.5726")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 25.5, cfg.GeofenceRadiusMeters)
	assert.Equal(t, "10", cfg.DiscountLimit().String())
	assert.True(t, cfg.PaymentGatewayMock)
	assert.InDelta(t, 22.5726, cfg.CompanyLatitude, 1e-9)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Env:                  "development",
			TimeZone:             "UTC",
			GeofenceRadiusMeters: 15,
			MaxDiscountPercent:   15,
			OTPMaxAttempts:       5,
		}
	}

	t.Run("valid", func(t *testing.T) {
		c := base()
		assert.NoError(t, c.Validate())
	})

	t.Run("production requires secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		assert.ErrorContains(t, c.Validate(), "JWT_SECRET")
		c.JWTSecret = "s3cret"
		assert.NoError(t, c.Validate())
	})

	t.Run("non positive radius", func(t *testing.T) {
		c := base()
		c.GeofenceRadiusMeters = 0
		assert.ErrorContains(t, c.Validate(), "GEOFENCE_RADIUS_METERS")
	})

	t.Run("discount limit", func(t *testing.T) {
		c := base()
		c.MaxDiscountPercent = 0
		assert.NoError(t, c.Validate())
		c.MaxDiscountPercent = 20
		assert.ErrorContains(t, c.Validate(), "MAX_DISCOUNT_PERCENT")
		c.MaxDiscountPercent = -1
		assert.ErrorContains(t, c.Validate(), "MAX_DISCOUNT_PERCENT")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		c := base()
		c.TimeZone = "Mars/Olympus"
		assert.ErrorContains(t, c.Validate(), "TIMEZONE")
		assert.Equal(t, time.UTC, c.Location())
	})
}
