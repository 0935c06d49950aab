package components

import (
	"swiss-virtual-airline/internal/handler"
	"swiss-virtual-airline/internal/handler/api"
	"swiss-virtual-airline/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDepartureHandler,
		api.NewBookingHandler,
		api.NewBotHandler,
		api.NewRewardsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	departure *api.DepartureHandler,
	booking *api.BookingHandler,
	bot *api.BotHandler,
	rewards *api.RewardsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Departure: departure,
		Booking:   booking,
		Bot:       bot,
		Rewards:   rewards,
	}
}
