package fx

import (
	"github.com/IdrisAkintobi/altfolio/config"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	"github.com/IdrisAkintobi/altfolio/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
