package components

import (
	"log/slog"

	"bellebook/internal/infra/availcache"
	"bellebook/internal/infra/sessionstore"
	"bellebook/internal/infra/stripepay"
	"bellebook/internal/infra/upstream"
	"bellebook/internal/pkg/config"
	"bellebook/internal/usecase/commands"
	"bellebook/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewUpstreamClient,
		fx.Annotate(
			upstream.NewCatalogGateway,
			fx.As(new(commands.CatalogGateway)),
		),
		fx.Annotate(
			upstream.NewAvailabilityGateway,
			fx.As(new(queries.AvailabilityGateway)),
		),
		fx.Annotate(
			upstream.NewReservationGateway,
			fx.As(new(commands.ReservationGateway)),
		),
		fx.Annotate(
			NewStripeAdapter,
			fx.As(new(commands.PaymentConfirmer)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionReader)),
		),
		fx.Annotate(
			NewDatesCache,
			fx.As(new(queries.DatesCache)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream, logger)
}

func NewStripeAdapter(cfg config.Config, logger *slog.Logger) *stripepay.Adapter {
	return stripepay.NewAdapter(cfg.Stripe, logger)
}

func NewSessionStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *sessionstore.RedisStore {
	return sessionstore.NewRedisStore(client, cfg.Session.TTL, logger)
}

func NewDatesCache(client *redis.Client, cfg config.Config, logger *slog.Logger) *availcache.RedisCache {
	return availcache.NewRedisCache(client, cfg.Session.DatesCacheTTL, logger)
}
