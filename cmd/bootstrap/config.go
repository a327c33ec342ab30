package bootstrap

import (
	"strings"

	"turnera/internal/pkg/config"
	"turnera/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

const minSecretLength = 16

// NewConfig loads the environment and refuses settings the booking rules
// cannot run with.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, errs.Wrap(err, "load config")
	}
	if err := ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg config.Config) error {
	// Slot starts are stored as naive UTC timestamps.
	if !strings.EqualFold(cfg.DB.TimeZone, "UTC") {
		return errs.Newf("DB_TIMEZONE must be UTC, got %q", cfg.DB.TimeZone)
	}
	if len(cfg.JWT.Secret) < minSecretLength {
		return errs.Newf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}
	if cfg.Booking.OverlapWindow < 0 {
		return errs.Newf("BOOKING_OVERLAP_WINDOW must not be negative, got %s", cfg.Booking.OverlapWindow)
	}
	if cfg.Booking.DefaultDurationMin < 0 {
		return errs.Newf("BOOKING_DEFAULT_DURATION_MIN must not be negative, got %d", cfg.Booking.DefaultDurationMin)
	}
	return nil
}
