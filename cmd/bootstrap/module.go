package bootstrap

import (
	"tournament-billing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BillingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
