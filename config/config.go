// Package config loads service configuration from an optional yaml file and
// ESTIMATE_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"server_port"`
	MaxFileSize   int64  `mapstructure:"max_file_size"`
	DatabasePath  string `mapstructure:"database_path"`
	WorkbookPath  string `mapstructure:"workbook_path"`
	InboxDir      string `mapstructure:"inbox_dir"`
	InboxEnabled  bool   `mapstructure:"inbox_enabled"`
	SheetsEnabled bool   `mapstructure:"sheets_enabled"`
}

// LoadConfig reads configuration, falling back to defaults when no config
// file is present. cfgFile may be empty.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_port", "8080")
	v.SetDefault("max_file_size", int64(10*1024*1024))
	v.SetDefault("database_path", "estimates.db")
	v.SetDefault("workbook_path", "estimates.xlsx")
	v.SetDefault("inbox_dir", "")
	v.SetDefault("inbox_enabled", false)
	v.SetDefault("sheets_enabled", true)

	v.SetEnvPrefix("ESTIMATE")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.InboxEnabled && cfg.InboxDir == "" {
		return nil, fmt.Errorf("inbox_enabled requires inbox_dir")
	}

	return &cfg, nil
}
