package backend

import (
	"go.uber.org/fx"

	"lodestone/internal/config"
	"lodestone/internal/config/logger"
)

// Module provides the backend client for dependency injection
var Module = fx.Module("backend",
	fx.Provide(func(cfg *config.Config, log logger.Logger) Client {
		return NewClient(cfg, log)
	}),
)
