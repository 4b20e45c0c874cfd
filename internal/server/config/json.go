package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/minired/internal/flagx"
	"github.com/dmitrijs2005/minired/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Durations accept both "168h" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr                string          `json:"endpoint_addr"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AllowedOrigin               *string         `json:"allowed_origin"`
	LogLevel                    string          `json:"log_level"`
}

// parseJson loads values from the file named by -c/-config into config.
// Keys missing from the file keep their current values. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.AllowedOrigin != nil {
		config.AllowedOrigin = *c.AllowedOrigin
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
