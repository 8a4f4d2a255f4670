// Package config loads dsakit settings from defaults, an optional config file
// and DSAKIT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DSAKIT_LOG_LEVEL.
const EnvPrefix = "DSAKIT"

// Config holds all configuration for the CLI.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	BST      BSTConfig      `mapstructure:"bst"`
	Dijkstra DijkstraConfig `mapstructure:"dijkstra"`
	Coins    CoinsConfig    `mapstructure:"coins"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// BSTConfig holds tree command configuration.
type BSTConfig struct {
	// Kind is how raw values are parsed: auto, int, float or string.
	Kind string `mapstructure:"kind"`
}

// DijkstraConfig holds shortest-path command configuration.
type DijkstraConfig struct {
	Graph string `mapstructure:"graph"`
	Trace bool   `mapstructure:"trace"`
}

// CoinsConfig holds coin-change command configuration.
type CoinsConfig struct {
	// Denominations are in cents.
	Denominations []int `mapstructure:"denominations"`
}

// Kinds lists the accepted BSTConfig.Kind values.
var Kinds = []string{"auto", "int", "float", "string"}

// Load loads configuration from file (if configPath is non-empty) and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("bst.kind", "auto")
	v.SetDefault("dijkstra.graph", "graph_edges.csv")
	v.SetDefault("dijkstra.trace", false)
	v.SetDefault("coins.denominations", []int{1, 5, 10, 20, 50, 100, 500, 1000, 2000, 5000, 10000})
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	kindOK := false
	for _, k := range Kinds {
		if c.BST.Kind == k {
			kindOK = true
			break
		}
	}
	if !kindOK {
		return fmt.Errorf("invalid bst kind %q (want one of %s)", c.BST.Kind, strings.Join(Kinds, ", "))
	}

	if len(c.Coins.Denominations) == 0 {
		return fmt.Errorf("coins.denominations cannot be empty")
	}
	for _, d := range c.Coins.Denominations {
		if d <= 0 {
			return fmt.Errorf("invalid denomination %d: must be positive", d)
		}
	}

	return nil
}
