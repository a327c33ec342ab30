package bootstrap

import (
	"turnera/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything below HTTP: config, logging, storage and use cases.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
)
