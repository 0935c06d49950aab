package bootstrap

import (
	"swiss-virtual-airline/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.DiscordConfig { return cfg.Discord },
		func(cfg config.Config) config.BotConfig { return cfg.Bot },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.RewardsConfig { return cfg.Rewards },
		func(cfg config.Config) config.DeparturesConfig { return cfg.Departures },
	),
)
