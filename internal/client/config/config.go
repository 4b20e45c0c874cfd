package config

import (
	"time"

	"github.com/dmitrijs2005/minired/internal/common"
	"github.com/dmitrijs2005/minired/internal/filex"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the minired client.
//
// Fields:
//   - APIURL: backend base address, every endpoint path is appended to it.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - DataDir: where the token database, REPL history and log file live.
//   - LogLevel: slog level name for the client log file.
//   - ForceLogoutOn401: end the session when an authenticated call is
//     rejected with 401 instead of leaving a stale identity around.
type Config struct {
	APIURL           string
	RequestTimeout   time.Duration
	DataDir          string
	LogLevel         string
	ForceLogoutOn401 bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = common.DefaultAPIURL
	c.RequestTimeout = 10 * time.Second
	c.DataDir = filex.DefaultDataDir()
	c.LogLevel = "info"
	c.ForceLogoutOn401 = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	_ = godotenv.Load()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
