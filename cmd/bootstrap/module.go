package bootstrap

import (
	"canteen-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	NotifyModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
