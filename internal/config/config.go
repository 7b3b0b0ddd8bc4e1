// Package config loads the optional adele.yaml configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the ADeLe tooling configuration
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Color    bool   `mapstructure:"color"`
}

// Load loads the configuration from adele.yml or adele.yaml in the
// working directory. A missing file falls back to defaults; environment
// variables with the ADELE_ prefix override both.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("color", true)

	// Set config name and paths
	v.SetConfigName("adele")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("ADELE")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig checks the loaded values
func validateConfig(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level: %s (valid: debug, info, warn, error)", config.LogLevel)
	}
}
