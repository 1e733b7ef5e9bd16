package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(nil))

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := fromLookup(lookupFrom(map[string]string{
			"SUBNETQUIZ_LOG_LEVEL":        "debug",
			"SUBNETQUIZ_LISTEN_ADDR":      ":6000",
			"SUBNETQUIZ_SHUTDOWN_TIMEOUT": "3s",
			"SUBNETQUIZ_MAX_GEN_ATTEMPTS": "50",
			"SUBNETQUIZ_STRICT_ADDRS":     "true",
		}))

		require.NoError(t, err)
		require.Equal(t, Config{
			LogLevel:        "debug",
			ListenAddr:      ":6000",
			ShutdownTimeout: 3 * time.Second,
			MaxGenAttempts:  50,
			StrictAddrs:     true,
		}, cfg)
	})

	t.Run("malformed values", func(t *testing.T) {
		for key, val := range map[string]string{
			"SUBNETQUIZ_SHUTDOWN_TIMEOUT": "soon",
			"SUBNETQUIZ_MAX_GEN_ATTEMPTS": "many",
			"SUBNETQUIZ_STRICT_ADDRS":     "perhaps",
		} {
			_, err := fromLookup(lookupFrom(map[string]string{key: val}))
			require.Error(t, err, key)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for key, val := range map[string]string{
			"SUBNETQUIZ_LISTEN_ADDR":      "",
			"SUBNETQUIZ_SHUTDOWN_TIMEOUT": "0s",
			"SUBNETQUIZ_MAX_GEN_ATTEMPTS": "0",
		} {
			_, err := fromLookup(lookupFrom(map[string]string{key: val}))
			require.Error(t, err, key)
		}
	})
}
