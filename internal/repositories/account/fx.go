package account

import "go.uber.org/fx"

var Module = fx.Module("account_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
