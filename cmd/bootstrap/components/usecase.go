package components

import (
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/pkg/clock"
	"turnera/internal/pkg/config"
	"turnera/internal/usecase"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAdmissionCommands,
		commands.NewProviderCommands,
		commands.NewCatalogCommands,
		commands.NewScheduleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProviderQueries,
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
		queries.NewScheduleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingPolicy(cfg config.Config) booking.Policy {
	return booking.Policy{
		OverlapWindow:   cfg.Booking.OverlapWindow,
		DefaultDuration: time.Duration(cfg.Booking.DefaultDurationMin) * time.Minute,
	}.Normalized()
}
