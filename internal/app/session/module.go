package session

import (
	"go.uber.org/fx"

	"lodestone/internal/app/backend"
	"lodestone/internal/config/logger"
)

// Module provides the session components for dependency injection
var Module = fx.Module("session",
	fx.Provide(
		NewProbe,
		func(client backend.Client, probe Probe, log logger.Logger) *Session {
			return New(client, probe, log)
		},
	),
)
