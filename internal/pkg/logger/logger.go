// Package logger builds the process slog.Logger from LogConfig.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"turnera/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ParseLevel falls back to info for unknown names.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location is the zone log timestamps and request IDs are rendered in.
func Location(cfg config.LogConfig) *time.Location {
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}

func New(cfg config.LogConfig) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, gin.Mode() == gin.ReleaseMode)
}

// NewWithWriter emits JSON when asJSON is set and text otherwise.
func NewWithWriter(w io.Writer, cfg config.LogConfig, asJSON bool) *slog.Logger {
	loc := Location(cfg)
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(loc).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
