package app

import (
	"go.uber.org/fx"

	"lodestone/internal/app/backend"
	"lodestone/internal/app/cli"
	"lodestone/internal/app/dump"
	"lodestone/internal/app/session"
	"lodestone/internal/app/tail"
	"lodestone/internal/app/ui"
	"lodestone/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	backend.Module,
	session.Module,
	tail.Module,
	ui.Module,
	dump.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
