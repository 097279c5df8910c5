package bootstrap

import (
	"petkeeper/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.EngineModule,
	components.HandlerModule,
)
