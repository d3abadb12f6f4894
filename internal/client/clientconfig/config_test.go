//go:build unit

package clientconfig_test

import (
	"testing"
	"time"

	"appointment-system/internal/client/clientconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := clientconfig.Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, "/api/v1", cfg.APIPrefix)
		assert.Equal(t, 60*time.Second, cfg.Timeout)

		r := cfg.Resilience()
		assert.Equal(t, 3, r.MaxRetries)
		assert.Equal(t, time.Second, r.BaseDelay)
		assert.Equal(t, uint32(5), r.FailureThreshold)
		assert.Equal(t, 30*time.Second, r.BreakDuration)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("APPOINTMENT_CLIENT_BASE_URL", "https://clinic.example")
		t.Setenv("APPOINTMENT_CLIENT_RETRY_COUNT", "0")
		t.Setenv("APPOINTMENT_CLIENT_RETRY_BASE_DELAY", "250ms")
		t.Setenv("APPOINTMENT_CLIENT_BREAK_DURATION", "5s")

		cfg, err := clientconfig.Load()
		require.NoError(t, err)
		assert.Equal(t, "https://clinic.example", cfg.BaseURL)
		assert.Equal(t, 0, cfg.Resilience().MaxRetries)
		assert.Equal(t, 250*time.Millisecond, cfg.Resilience().BaseDelay)
		assert.Equal(t, 5*time.Second, cfg.Resilience().BreakDuration)
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		t.Setenv("APPOINTMENT_CLIENT_TIMEOUT", "soon")
		_, err := clientconfig.Load()
		assert.Error(t, err)
	})
}
