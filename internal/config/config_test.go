package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodestone/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultStoreCapacity, cfg.Store.Capacity)
	assert.Equal(t, SocketDir, cfg.Backend.SocketDir)
	assert.Equal(t, DefaultEventBuffer, cfg.Backend.EventBuffer)
	assert.Equal(t, DefaultTailDebounce, cfg.Tail.Debounce)
	assert.Equal(t, DefaultTailInclude, cfg.Tail.Include)
	assert.Equal(t, DefaultTailIgnore, cfg.Tail.Ignore)
	assert.Equal(t, DefaultInstancesFile, cfg.Instances.Path)
	assert.Empty(t, cfg.Sentry.DSN)
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) func()
		check     func(t *testing.T, cfg *Config)
		error     error
	}{
		{
			name: "no config file found - uses default",
			setupFunc: func(t *testing.T) func() {
				return func() {}
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultStoreCapacity, cfg.Store.Capacity)
			},
		},
		{
			name: "valid config file",
			setupFunc: func(t *testing.T) func() {
				content := `logging:
  level: debug
  format: json
store:
  capacity: 500
backend:
  socket_dir: /run/launcher
  event_buffer: 99
tail:
  debounce: 50ms
instances:
  path: /etc/lodestone/instances.yaml
`
				if err := os.WriteFile(ConfigFile, []byte(content), 0o644); err != nil {
					t.Fatal(err)
				}
				return func() { os.Remove(ConfigFile) }
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, 500, cfg.Store.Capacity)
				assert.Equal(t, "/run/launcher", cfg.Backend.SocketDir)
				assert.Equal(t, 99, cfg.Backend.EventBuffer)
				assert.Equal(t, 50*time.Millisecond, cfg.Tail.Debounce)
				assert.Equal(t, "/etc/lodestone/instances.yaml", cfg.Instances.Path)
				// keys absent from the file keep their defaults
				assert.Equal(t, DefaultTailInclude, cfg.Tail.Include)
			},
		},
		{
			name: "malformed yaml",
			setupFunc: func(t *testing.T) func() {
				if err := os.WriteFile(ConfigFile, []byte("logging: [unclosed"), 0o644); err != nil {
					t.Fatal(err)
				}
				return func() { os.Remove(ConfigFile) }
			},
			error: errors.ErrFailedToReadConfig,
		},
		{
			name: "invalid store capacity",
			setupFunc: func(t *testing.T) func() {
				if err := os.WriteFile(ConfigFile, []byte("store:\n  capacity: -1\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				return func() { os.Remove(ConfigFile) }
			},
			error: errors.ErrInvalidConfig,
		},
		{
			name: "invalid log level",
			setupFunc: func(t *testing.T) func() {
				if err := os.WriteFile(ConfigFile, []byte("logging:\n  level: shouting\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				return func() { os.Remove(ConfigFile) }
			},
			error: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := tt.setupFunc(t)
			defer cleanup()

			cfg, err := Load()

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		error  error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:   "zero store capacity",
			mutate: func(cfg *Config) { cfg.Store.Capacity = 0 },
			error:  errors.ErrInvalidStoreSize,
		},
		{
			name:   "zero event buffer",
			mutate: func(cfg *Config) { cfg.Backend.EventBuffer = 0 },
			error:  errors.ErrInvalidEventBuffer,
		},
		{
			name:   "negative debounce",
			mutate: func(cfg *Config) { cfg.Tail.Debounce = -time.Second },
			error:  errors.ErrInvalidDebounce,
		},
		{
			name:   "unknown log level",
			mutate: func(cfg *Config) { cfg.Logging.Level = "loud" },
			error:  errors.ErrInvalidLogLevel,
		},
		{
			name:   "empty log level is allowed",
			mutate: func(cfg *Config) { cfg.Logging.Level = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
