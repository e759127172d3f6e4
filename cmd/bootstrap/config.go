package bootstrap

import (
	"tastebite/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.OffersConfig { return cfg.Offers },
		func(cfg config.Config) config.QRConfig { return cfg.QR },
	),
)
