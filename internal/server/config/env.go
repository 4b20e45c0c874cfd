package config

import (
	"fmt"
	"os"
	"time"
)

// lookupEnv is a seam for tests.
var lookupEnv = os.LookupEnv

// parseEnv overlays config with environment variables. Malformed durations
// panic.
func parseEnv(config *Config) {
	if v, ok := lookupEnv("ADDRESS"); ok && v != "" {
		config.EndpointAddr = v
	}
	if v, ok := lookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := lookupEnv("JWT_SECRET_KEY"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := lookupEnv("ACCESS_TOKEN_VALIDITY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("ACCESS_TOKEN_VALIDITY: %w", err))
		}
		config.AccessTokenValidityDuration = d
	}
	if v, ok := lookupEnv("ALLOWED_ORIGIN"); ok {
		config.AllowedOrigin = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
