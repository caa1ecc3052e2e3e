package bootstrap

import (
	"tournament-billing/internal/infra/billing"
	"tournament-billing/internal/pkg/config"

	"go.uber.org/fx"
)

var BillingModule = fx.Module("billing",
	fx.Provide(
		fx.Annotate(
			NewBillingClient,
			fx.As(new(billing.Provider)),
		),
	),
)

func NewBillingClient(cfg config.Config) *billing.Client {
	return billing.NewClient(cfg.Billing)
}
