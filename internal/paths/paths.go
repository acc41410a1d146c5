// Package paths resolves the configuration directory and the backing
// data file location for the roster CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataFileName is the CWD-relative default backing file.
const DefaultDataFileName = "users.json"

// Environment variable names for overrides.
const (
	EnvConfigDir = "ROSTER_CONFIG_DIR"
	EnvDataFile  = "ROSTER_DATA_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/roster (fallback ~/.config/roster)
// macOS:   ~/Library/Application Support/roster
// Windows: %APPDATA%/roster
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "roster"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "roster"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "roster"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ROSTER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataFile returns the backing file path following the precedence
// chain: flag > config.yaml value > ROSTER_DATA_FILE env > CWD default.
//
// The CWD-relative default ($(CWD)/users.json) keeps a bare `roster`
// invocation self-contained in the working directory.
func ResolveDataFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataFileName), nil
}
