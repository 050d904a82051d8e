package graphapi

import "go.uber.org/fx"

var Module = fx.Module("graphapi",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(Caller)),
		),
	),
)
