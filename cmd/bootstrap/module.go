package bootstrap

import (
	"swiss-virtual-airline/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	MetricsModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
