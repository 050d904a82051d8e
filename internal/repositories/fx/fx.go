package fx

import (
	"github.com/orgball2608/insta-shop-sync/internal/repositories/account"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/post"
	"github.com/orgball2608/insta-shop-sync/internal/repositories/producttag"
	"go.uber.org/fx"
)

var Module = fx.Options(
	account.Module,
	post.Module,
	producttag.Module,
)
