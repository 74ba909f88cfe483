package main

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Delimiters DelimitersConfig `mapstructure:"delimiters"`
	Report     ReportConfig     `mapstructure:"report"`
}

// DelimitersConfig sets the substitution token fences for the apply command.
type DelimitersConfig struct {
	Open  string `mapstructure:"open"`
	Close string `mapstructure:"close"`
}

type ReportConfig struct {
	// MaxLines caps how many issues a single report prints before folding
	// the rest into a count, so a badly broken file does not flood the
	// terminal.
	MaxLines int  `mapstructure:"max_lines"`
	Color    bool `mapstructure:"color"`
}

func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dictweaver")
	}

	v.SetDefault("delimiters.open", "{{")
	v.SetDefault("delimiters.close", "}}")
	v.SetDefault("report.max_lines", 50)
	v.SetDefault("report.color", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	return &cfg, nil
}
