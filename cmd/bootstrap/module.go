package bootstrap

import (
	"booking-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// WorkerModule wires only what the mail worker process needs; it skips
// the HTTP stack entirely.
var WorkerModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.WorkerModule,
)
