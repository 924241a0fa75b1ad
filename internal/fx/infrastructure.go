package fx

import (
	"github.com/IdrisAkintobi/altfolio/config"
	"github.com/IdrisAkintobi/altfolio/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newAssetRepository,
		newInvestmentRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newAssetRepository(db *gorm.DB) *infrastructure.AssetRepository {
	return &infrastructure.AssetRepository{DB: db}
}

func newInvestmentRepository(db *gorm.DB) *infrastructure.InvestmentRepository {
	return &infrastructure.InvestmentRepository{DB: db}
}
