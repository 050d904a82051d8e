package post

import "go.uber.org/fx"

var Module = fx.Module("post_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
