package fx

import (
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	"github.com/IdrisAkintobi/altfolio/internal/domain/auth"
	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	"github.com/IdrisAkintobi/altfolio/internal/middleware"
	"github.com/IdrisAkintobi/altfolio/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule provides the handler and rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	assetSvc *asset.Service,
	investmentSvc *investment.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:       userSvc,
		AuthService:       authSvc,
		JwtService:        jwtSvc,
		AssetService:      assetSvc,
		InvestmentService: investmentSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
