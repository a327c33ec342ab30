package bootstrap

import (
	"log/slog"

	"turnera/internal/pkg/config"
	"turnera/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	l := logger.New(cfg.Log)
	slog.SetDefault(l)
	return l
}
