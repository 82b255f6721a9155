package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devadigapratham/cncdro/input"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	HTTPAddr     string
	SettingsPath string
	TravelMin    float64
	TravelMax    float64
	JogFeed      float64
	LogLevel     logrus.Level
}

// Travel returns the plausible travel range, nil when unbounded
func (c *Config) Travel() *input.Range {
	if c.TravelMin == 0 && c.TravelMax == 0 {
		return nil
	}
	return &input.Range{Min: c.TravelMin, Max: c.TravelMax}
}

// BindFlags defines the configuration flags on fs and binds them to v
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	// Define flags
	fs.String("config", "", "Configuration file (yaml, toml or json)")
	fs.String("http-addr", ":8080", "HTTP API address")
	fs.String("settings-path", "", "BoltDB file for display settings (in memory when empty)")
	fs.Float64("travel-min", 0, "Lowest accepted position in mm")
	fs.Float64("travel-max", 0, "Highest accepted position in mm")
	fs.Float64("jog-feed", 2000, "Initial jog feed in mm/min")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")

	// Environment variables override defaults, flags override both
	v.SetEnvPrefix("CNCDRO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v.BindPFlags(fs)
}

// Load reads the optional config file and returns a validated Config
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:     v.GetString("http-addr"),
		SettingsPath: v.GetString("settings-path"),
		TravelMin:    v.GetFloat64("travel-min"),
		TravelMax:    v.GetFloat64("travel-max"),
		JogFeed:      v.GetFloat64("jog-feed"),
		LogLevel:     level,
	}

	// Validate
	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP address is required")
	}
	if cfg.TravelMin > cfg.TravelMax {
		return nil, fmt.Errorf("travel-min %g is above travel-max %g", cfg.TravelMin, cfg.TravelMax)
	}
	if cfg.JogFeed <= 0 {
		return nil, fmt.Errorf("jog-feed must be positive, got %g", cfg.JogFeed)
	}

	return cfg, nil
}
