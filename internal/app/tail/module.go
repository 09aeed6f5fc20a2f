package tail

import (
	"go.uber.org/fx"

	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

// Factory creates followers and matchers from the application configuration
type Factory struct {
	cfg *config.Config
	log logger.Logger
}

// NewFactory creates a new Factory instance
func NewFactory(cfg *config.Config, log logger.Logger) *Factory {
	return &Factory{cfg: cfg, log: log}
}

// Follow creates a follower for a log file using the configured debounce
func (f *Factory) Follow(path string) *Follower {
	return NewFollower(path, f.cfg.Tail.Debounce, f.log)
}

// Matcher builds the log discovery matcher from the configured patterns
func (f *Factory) Matcher() (Matcher, error) {
	return NewMatcher(f.cfg.Tail.Include, f.cfg.Tail.Ignore)
}

// Module provides the tail components for dependency injection
var Module = fx.Module("tail",
	fx.Provide(NewFactory),
)
