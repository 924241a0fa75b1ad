package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IdrisAkintobi/altfolio/config"
	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	"github.com/IdrisAkintobi/altfolio/internal/infrastructure"
	"github.com/IdrisAkintobi/altfolio/internal/logger"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	numUsers                   = 30
	numAssets                  = 100
	numInvestments             = 500
	performanceUpdatesPerAsset = 10

	adminName     = "Admin User"
	adminEmail    = "admin@altfolio.com"
	adminPassword = "admin123"
	usersPassword = "password123"
)

var assetNamesByType = map[asset.Types][]string{
	asset.TypeStartup: {
		"TechVenture AI", "CloudSync Solutions", "HealthTech Innovations",
		"FinanceFlow App", "EduLearn Platform", "GreenEnergy Systems",
		"FoodTech Delivery", "SmartHome Devices", "CyberSec Pro",
		"DataAnalytics Plus", "BioTech Labs", "RoboticsCo",
		"SpaceTech Ventures", "MediaStream Inc", "SocialConnect App",
		"EcoFriendly Products", "MobilePay Solutions", "VirtualReality World",
		"BlockchainPro", "AgriTech Farms",
	},
	asset.TypeCryptoFund: {
		"Bitcoin Growth Fund", "Ethereum Alpha Fund", "DeFi Opportunities Fund",
		"Crypto Diversified Portfolio", "Digital Assets Fund",
		"Blockchain Ventures Fund", "Altcoin Strategic Fund",
		"Web3 Innovation Fund", "NFT & Metaverse Fund", "Crypto Hedge Fund",
		"Stablecoin Plus Fund", "DeFi Yield Fund", "Layer 2 Solutions Fund",
		"GameFi Investment Fund", "Smart Contract Fund",
	},
	asset.TypeFarmland: {
		"Midwest Corn Fields", "California Vineyards", "Organic Farm Holdings",
		"Sustainable Agriculture Land", "Texas Ranch Properties",
		"Midwest Soybean Farms", "Oregon Fruit Orchards", "Florida Citrus Groves",
		"Iowa Agricultural Land", "Montana Cattle Ranch",
		"Washington Apple Orchards", "Vermont Dairy Farms", "Kansas Wheat Fields",
		"Georgia Pecan Groves", "Pennsylvania Farmland",
	},
	asset.TypeCollectible: {
		"Vintage Baseball Cards", "Rare Comic Books", "Classic Car Collection",
		"Fine Art Portfolio", "Antique Furniture", "Limited Edition Watches",
		"Rare Coins Collection", "Vintage Wine Collection",
		"Historical Manuscripts", "Designer Handbags", "Vintage Vinyl Records",
		"Sports Memorabilia", "Rare Stamps Collection", "Antique Jewelry",
		"Collector Sneakers", "Fine Whiskey Collection",
	},
	asset.TypeOther: {
		"Precious Metals Portfolio", "Commodity Index Fund",
		"Real Estate Crowdfunding", "Private Equity Fund", "Venture Debt Fund",
		"Infrastructure Fund", "Music Royalties", "Film Production Rights",
		"Patent Portfolio", "Domain Name Portfolio", "Timber Investment",
		"Water Rights", "Carbon Credits", "Renewable Energy Credits",
		"Intellectual Property Rights",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := run(db); err != nil {
		logger.Fatal().Err(err).Msg("Seeding failed")
	}

	logger.Info().
		Str("admin_email", adminEmail).
		Str("admin_password", adminPassword).
		Str("users_password", usersPassword).
		Msg("Seeding completed")
}

func run(db *gorm.DB) error {
	ctx := context.Background()

	if err := clearData(db); err != nil {
		return err
	}

	users, err := createUsers(ctx, db)
	if err != nil {
		return err
	}
	logger.Info().Int("count", len(users)).Msg("Users created")

	assets, err := createAssets(ctx, db)
	if err != nil {
		return err
	}
	logger.Info().Int("count", len(assets)).Msg("Assets created")

	historyCount, err := createPerformanceHistory(ctx, db, assets)
	if err != nil {
		return err
	}
	logger.Info().Int("count", historyCount).Msg("Performance history entries created")

	investmentCount, err := createInvestments(ctx, db, users, assets)
	if err != nil {
		return err
	}
	logger.Info().Int("count", investmentCount).Msg("Investments created")

	return nil
}

func clearData(db *gorm.DB) error {
	for _, table := range []string{"investments", "asset_performance_snapshots", "assets", "users"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(ctx context.Context, db *gorm.DB) ([]*user.User, error) {
	// one shared hash keeps seeding fast at bcrypt cost 12
	sharedHash, err := bcrypt.GenerateFromPassword([]byte(usersPassword), 12)
	if err != nil {
		return nil, err
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		return nil, err
	}

	now := pkg.SetTimestamps()
	users := []*user.User{{
		Id:        pkg.GenerateULIDObject(),
		Name:      adminName,
		Email:     adminEmail,
		Password:  string(adminHash),
		Role:      user.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	seenEmails := map[string]bool{adminEmail: true}
	for i := 1; i < numUsers; i++ {
		firstName := gofakeit.FirstName()
		lastName := gofakeit.LastName()
		email := strings.ToLower(fmt.Sprintf("%s.%s%d@%s", firstName, lastName, i, gofakeit.DomainName()))
		if seenEmails[email] {
			continue
		}
		seenEmails[email] = true

		users = append(users, &user.User{
			Id:        pkg.GenerateULIDObject(),
			Name:      firstName + " " + lastName,
			Email:     email,
			Password:  string(sharedHash),
			Role:      user.RoleViewer,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := db.WithContext(ctx).Table("users").Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createAssets(ctx context.Context, db *gorm.DB) ([]*asset.Asset, error) {
	types := asset.AllTypes()
	usedNames := make(map[string]bool, numAssets)

	now := pkg.SetTimestamps()
	assets := make([]*asset.Asset, 0, numAssets)
	for i := 0; i < numAssets; i++ {
		assetType := types[gofakeit.Number(0, len(types)-1)]
		names := assetNamesByType[assetType]
		name := names[gofakeit.Number(0, len(names)-1)]
		if usedNames[name] {
			name = fmt.Sprintf("%s %d", name, i)
		}
		usedNames[name] = true

		assets = append(assets, &asset.Asset{
			Id:                 pkg.GenerateULIDObject(),
			Name:               name,
			Type:               assetType,
			CurrentPerformance: gofakeit.Float64Range(-50, 200),
			// roughly one in five assets is closed to new investments
			IsListed:    gofakeit.Number(1, 5) != 1,
			LastUpdated: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := db.WithContext(ctx).Table("assets").Create(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func createPerformanceHistory(ctx context.Context, db *gorm.DB, assets []*asset.Asset) (int, error) {
	now := time.Now()
	oneYearAgo := now.AddDate(-1, 0, 0)

	var entries []*asset.PerformanceSnapshot
	for _, a := range assets {
		entries = append(entries, &asset.PerformanceSnapshot{
			Id:               pkg.GenerateULIDObject(),
			AssetId:          a.Id,
			Date:             oneYearAgo,
			PercentageChange: 0,
		})

		// random walk between the initial and current readings
		currentPerf := 0.0
		for i := 1; i < performanceUpdatesPerAsset; i++ {
			daysAgo := 365 - (i*365)/performanceUpdatesPerAsset
			currentPerf += gofakeit.Float64Range(-20, 20)

			entries = append(entries, &asset.PerformanceSnapshot{
				Id:               pkg.GenerateULIDObject(),
				AssetId:          a.Id,
				Date:             now.AddDate(0, 0, -daysAgo),
				PercentageChange: currentPerf,
			})
		}

		entries = append(entries, &asset.PerformanceSnapshot{
			Id:               pkg.GenerateULIDObject(),
			AssetId:          a.Id,
			Date:             now,
			PercentageChange: a.CurrentPerformance,
		})
	}

	if err := db.WithContext(ctx).Table("asset_performance_snapshots").CreateInBatches(&entries, 500).Error; err != nil {
		return 0, err
	}
	return len(entries), nil
}

func amountForType(assetType asset.Types) float64 {
	switch assetType {
	case asset.TypeStartup:
		return float64(gofakeit.Number(5_000, 500_000))
	case asset.TypeCryptoFund:
		return float64(gofakeit.Number(1_000, 250_000))
	case asset.TypeFarmland:
		return float64(gofakeit.Number(50_000, 2_000_000))
	case asset.TypeCollectible:
		return float64(gofakeit.Number(500, 100_000))
	case asset.TypeOther:
		return float64(gofakeit.Number(10_000, 500_000))
	default:
		return float64(gofakeit.Number(1_000, 100_000))
	}
}

func createInvestments(ctx context.Context, db *gorm.DB, users []*user.User, assets []*asset.Asset) (int, error) {
	now := time.Now()
	seenPairs := make(map[string]bool, numInvestments)

	var investments []*investment.Investment
	for i := 0; i < numInvestments; i++ {
		u := users[gofakeit.Number(0, len(users)-1)]
		a := assets[gofakeit.Number(0, len(assets)-1)]

		pair := u.Id.String() + "/" + a.Id.String()
		if seenPairs[pair] {
			continue
		}
		seenPairs[pair] = true

		investmentDate := gofakeit.DateRange(now.AddDate(-2, 0, 0), now)

		// baseline sits below the current reading so most positions show a gain
		maxBaseline := a.CurrentPerformance - 5
		if maxBaseline < -49 {
			maxBaseline = -49
		}
		baseline := gofakeit.Float64Range(-50, maxBaseline)

		investments = append(investments, &investment.Investment{
			Id:                           pkg.GenerateULIDObject(),
			UserId:                       u.Id,
			AssetId:                      a.Id,
			InvestedAmount:               amountForType(a.Type),
			InvestmentDate:               investmentDate,
			AssetPerformanceAtInvestment: baseline,
			CreatedAt:                    investmentDate,
			UpdatedAt:                    investmentDate,
		})
	}

	if err := db.WithContext(ctx).Table("investments").CreateInBatches(&investments, 500).Error; err != nil {
		return 0, err
	}
	return len(investments), nil
}
