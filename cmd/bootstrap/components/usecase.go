package components

import (
	"bellebook/internal/pkg/clock"
	"bellebook/internal/pkg/config"
	"bellebook/internal/usecase"
	"bellebook/internal/usecase/commands"
	"bellebook/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewSessionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	store commands.SessionStore,
	catalogGateway commands.CatalogGateway,
	reservationGw commands.ReservationGateway,
	availability queries.AvailabilityQueries,
	confirmer commands.PaymentConfirmer,
	cfg config.Config,
	clk clock.Clock,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		store,
		catalogGateway,
		reservationGw,
		availability,
		confirmer,
		cfg.Stripe.ReturnURL,
		clk,
	)
}
