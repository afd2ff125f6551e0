// Package config loads padkeys settings from flags, environment and an
// optional config file, in that order of precedence.
package config

import (
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PADKEYS"

// Config holds the process settings.
type Config struct {
	Addr          string        `mapstructure:"addr"`
	FrameInterval time.Duration `mapstructure:"frame-interval"`
	QueueSize     int           `mapstructure:"queue-size"`
	LogLevel      string        `mapstructure:"log-level"`
	DevLog        bool          `mapstructure:"dev-log"`
	Tray          bool          `mapstructure:"tray"`
}

// Load parses args (without the program name) and merges environment
// variables and the config file named by --config.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("padkeys", pflag.ContinueOnError)
	fs.String("addr", ":8080", "HTTP listen address")
	fs.Duration("frame-interval", 16*time.Millisecond, "how often key events are published")
	fs.Int("queue-size", 64, "buffered gamepad events between the input thread and the frame loop")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Bool("dev-log", false, "human readable development logging")
	fs.Bool("tray", runtime.GOOS == "windows", "show a system tray icon")
	fs.String("config", "", "optional config file (yaml, toml or json)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.FrameInterval <= 0 {
		return errors.Errorf("frame-interval must be positive, got %s", c.FrameInterval)
	}
	if c.QueueSize < 0 {
		return errors.Errorf("queue-size must not be negative, got %d", c.QueueSize)
	}
	return nil
}
