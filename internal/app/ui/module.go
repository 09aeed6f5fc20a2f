package ui

import (
	"go.uber.org/fx"
)

// Module provides the ui components for dependency injection
var Module = fx.Module("ui",
	fx.Provide(NewRunner),
)
