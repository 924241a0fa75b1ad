package fx

import (
	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	"github.com/IdrisAkintobi/altfolio/internal/domain/auth"
	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	"github.com/IdrisAkintobi/altfolio/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule provides all domain services
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newAuthService,
		newAssetService,
		newInvestmentService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newAuthService(repo *infrastructure.UserRepository, userSvc *user.Service) *auth.Service {
	return auth.NewService(repo, userSvc)
}

func newAssetService(repo *infrastructure.AssetRepository) *asset.Service {
	return asset.NewService(repo)
}

func newInvestmentService(
	repo *infrastructure.InvestmentRepository,
	assetSvc *asset.Service,
) *investment.Service {
	return investment.NewService(repo, assetSvc)
}
