package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ak7sky/subnet-quiz/internal/core/netgen"
)

const envPrefix = "SUBNETQUIZ_"

type Config struct {
	LogLevel        string
	ListenAddr      string
	ShutdownTimeout time.Duration
	// MaxGenAttempts bounds the rejection sampling of a quiz network.
	MaxGenAttempts int
	// StrictAddrs rejects non-canonical address answers such as "10.0.0.001".
	StrictAddrs bool
}

func Default() Config {
	return Config{
		LogLevel:        "info",
		ListenAddr:      "localhost:50051",
		ShutdownTimeout: 10 * time.Second,
		MaxGenAttempts:  netgen.DefaultMaxAttempts,
	}
}

// FromEnv returns the defaults overridden by SUBNETQUIZ_* environment variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := lookup(envPrefix + "SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %sSHUTDOWN_TIMEOUT: %w", envPrefix, err)
		}
		cfg.ShutdownTimeout = d
	}
	if v, ok := lookup(envPrefix + "MAX_GEN_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %sMAX_GEN_ATTEMPTS: %w", envPrefix, err)
		}
		cfg.MaxGenAttempts = n
	}
	if v, ok := lookup(envPrefix + "STRICT_ADDRS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %sSTRICT_ADDRS: %w", envPrefix, err)
		}
		cfg.StrictAddrs = b
	}

	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxGenAttempts < 1 {
		return fmt.Errorf("max generation attempts must be positive, got %d", cfg.MaxGenAttempts)
	}
	return nil
}
