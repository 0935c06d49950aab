package components

import (
	"swiss-virtual-airline/internal/domain/rewards"
	"swiss-virtual-airline/internal/infra/discord"
	"swiss-virtual-airline/internal/infra/memstore"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		rewards.NewDefaultPolicy,
		fx.Annotate(
			memstore.NewFlightStore,
			fx.As(new(usecase.FlightCatalog)),
		),
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(usecase.BookingLedger)),
		),
		fx.Annotate(
			memstore.NewRewardsStore,
			fx.As(new(usecase.RewardsLedger)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(usecase.SessionStore)),
		),
		fx.Annotate(
			discord.NewClient,
			fx.As(new(usecase.IdentityProvider)),
		),
	),
)

func NewSessionStore(cfg config.SessionConfig) *memstore.SessionStore {
	return memstore.NewSessionStore(cfg.TTL)
}
