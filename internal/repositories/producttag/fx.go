package producttag

import "go.uber.org/fx"

var Module = fx.Module("product_tag_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
