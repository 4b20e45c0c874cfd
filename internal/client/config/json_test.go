package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_url":             "http://example:9000/api",
		"request_timeout":     "3s",
		"data_dir":            "/tmp/minired",
		"log_level":           "debug",
		"force_logout_on_401": false,
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"log_level": "warn",
	})

	base := Config{
		APIURL:           "http://localhost:5000/api",
		RequestTimeout:   10 * time.Second,
		DataDir:          "/data",
		LogLevel:         "info",
		ForceLogoutOn401: true,
	}

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "no config flag keeps values",
			args: []string{"testbin"},
			want: base,
		},
		{
			name: "all keys via -config",
			args: []string{"testbin", "-config", full},
			want: Config{
				APIURL:           "http://example:9000/api",
				RequestTimeout:   3 * time.Second,
				DataDir:          "/tmp/minired",
				LogLevel:         "debug",
				ForceLogoutOn401: false,
			},
		},
		{
			name: "absent keys untouched via -c",
			args: []string{"testbin", "-c", partial},
			want: Config{
				APIURL:           "http://localhost:5000/api",
				RequestTimeout:   10 * time.Second,
				DataDir:          "/data",
				LogLevel:         "warn",
				ForceLogoutOn401: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base
			parseJson(&cfg)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_parseJson_Panics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("missing file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		cfg := Config{}
		require.Panics(t, func() { parseJson(&cfg) })
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		os.Args = []string{"testbin", "-c", path}
		cfg := Config{}
		require.Panics(t, func() { parseJson(&cfg) })
	})
}
