package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// lookupEnv is a seam for tests.
var lookupEnv = os.LookupEnv

// parseEnv overlays cfg with environment variables. Malformed values panic,
// the same as malformed flags.
func parseEnv(cfg *Config) {
	if v, ok := lookupEnv("API_URL"); ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := lookupEnv("MINIRED_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("MINIRED_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookupEnv("MINIRED_DATA_DIR"); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookupEnv("MINIRED_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookupEnv("MINIRED_FORCE_LOGOUT_ON_401"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("MINIRED_FORCE_LOGOUT_ON_401: %w", err))
		}
		cfg.ForceLogoutOn401 = b
	}
}
