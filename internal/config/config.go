package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"lodestone/internal/app/errors"
)

// Config represents the application configuration. Multi-word keys need the
// mapstructure tag too: viper binds through mapstructure, not the yaml tags.
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	}
	Store struct {
		Capacity int `yaml:"capacity" mapstructure:"capacity"`
	}
	Backend struct {
		SocketDir   string `yaml:"socket_dir" mapstructure:"socket_dir"`
		EventBuffer int    `yaml:"event_buffer" mapstructure:"event_buffer"`
	}
	Tail struct {
		Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
		Include  []string      `yaml:"include" mapstructure:"include"`
		Ignore   []string      `yaml:"ignore" mapstructure:"ignore"`
	}
	Instances struct {
		Path string `yaml:"path" mapstructure:"path"`
	}
	Sentry struct {
		DSN string `yaml:"dsn" mapstructure:"dsn"`
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Store.Capacity = DefaultStoreCapacity

	cfg.Backend.SocketDir = SocketDir
	cfg.Backend.EventBuffer = DefaultEventBuffer

	cfg.Tail.Debounce = DefaultTailDebounce
	cfg.Tail.Include = append([]string(nil), DefaultTailInclude...)
	cfg.Tail.Ignore = append([]string(nil), DefaultTailIgnore...)

	cfg.Instances.Path = DefaultInstancesFile

	return cfg
}

// Load loads the configuration from lodestone.yaml, falling back to defaults
// when the file does not exist
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Capacity <= 0 {
		return errors.ErrInvalidStoreSize
	}

	if c.Backend.EventBuffer <= 0 {
		return errors.ErrInvalidEventBuffer
	}

	if c.Tail.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}
