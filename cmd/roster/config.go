// Config loading for the roster CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataFile = "data_file"

	defaultBackend = types.BackendJSON
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Roster CLI configuration

# Backend selection
backend: json

# Backing data file (optional; overridable by --data-file flag)
# data_file:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper and returns the store configuration. It creates the config
// directory and a default config.yaml on first run. A missing
// config.yaml is not an error.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
		// Missing config.yaml is not an error; defaults apply.
	}

	dataFile, err := paths.ResolveDataFile(dataFileFlag, v.GetString(cfgKeyDataFile))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data file: %w", err)
	}

	return types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataFile: dataFile,
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
