package syncerimpl

import (
	"github.com/orgball2608/insta-shop-sync/internal/syncer"
	"go.uber.org/fx"
)

var Module = fx.Module("syncer",
	fx.Provide(
		New,
		fx.Annotate(
			func(s *SyncerImpl) syncer.Syncer {
				return s
			},
			fx.As(new(syncer.Syncer)),
		),
	),
)
