package bootstrap

import (
	"appointment-system/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MigrationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
