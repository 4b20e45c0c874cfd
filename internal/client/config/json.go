package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/minired/internal/flagx"
	"github.com/dmitrijs2005/minired/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	APIURL           string          `json:"api_url"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	DataDir          string          `json:"data_dir"`
	LogLevel         string          `json:"log_level"`
	ForceLogoutOn401 *bool           `json:"force_logout_on_401"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without such a flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIURL = jc.APIURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.ForceLogoutOn401 != nil {
		cfg.ForceLogoutOn401 = *jc.ForceLogoutOn401
	}
}
