// Package filex resolves and prepares the directories the client keeps its
// local state in (token database, REPL history, log file).
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppDirName is the per-user subdirectory under the OS config directory.
const AppDirName = "minired"

// userHomeDir and userConfigDir are seams for tests.
var (
	userHomeDir   = os.UserHomeDir
	userConfigDir = os.UserConfigDir
)

// DefaultDataDir returns <user config dir>/minired, falling back to a
// directory in the working directory when the OS does not report one.
func DefaultDataDir() string {
	base, err := userConfigDir()
	if err != nil || base == "" {
		return "." + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// EnsureDir expands a leading "~", makes the path absolute, and creates the
// directory (0700, the token database lives there). It returns the
// absolute path.
func EnsureDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("home dir: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
