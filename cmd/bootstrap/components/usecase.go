package components

import (
	"swiss-virtual-airline/internal/pkg/clock"
	"swiss-virtual-airline/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAllowListAdminPolicy,
		usecase.NewAuthUseCase,
		usecase.NewDepartureUseCase,
		usecase.NewBookingUseCase,
		usecase.NewRewardsUseCase,
	),
)
