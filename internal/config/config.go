package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level scanready configuration.
type Config struct {
	ProjectPaths          []string `mapstructure:"project_paths"`
	PropertiesFile        string   `mapstructure:"properties_file"`
	ResolveTimeoutSeconds int      `mapstructure:"resolve_timeout_seconds"`
	WatchIntervalSeconds  int      `mapstructure:"watch_interval_seconds"`
	Output                Output   `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("project_paths", DefaultProjectPaths)
	v.SetDefault("properties_file", DefaultPropertiesFile)
	v.SetDefault("resolve_timeout_seconds", DefaultResolveTimeoutSeconds)
	v.SetDefault("watch_interval_seconds", DefaultWatchIntervalSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	for i, p := range cfg.ProjectPaths {
		cfg.ProjectPaths[i] = expandPath(p)
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
