package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/shared"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type InvestmentRepository struct {
	DB *gorm.DB
}

var _ investment.Repository = (*InvestmentRepository)(nil)

type investmentDB struct {
	Id                           string    `gorm:"type:varchar(26);primaryKey"`
	UserId                       string    `gorm:"type:varchar(26);not null;uniqueIndex:idx_investments_user_asset"`
	AssetId                      string    `gorm:"type:varchar(26);not null;uniqueIndex:idx_investments_user_asset"`
	InvestedAmount               float64   `gorm:"not null;default:0"`
	InvestmentDate               time.Time `gorm:"not null;index"`
	AssetPerformanceAtInvestment float64   `gorm:"not null"`
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

func toDomainInvestment(idb *investmentDB) (*investment.Investment, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(idb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	assetID, err := pkg.ParseULID(idb.AssetId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &investment.Investment{
		Id:                           id,
		UserId:                       userID,
		AssetId:                      assetID,
		InvestedAmount:               idb.InvestedAmount,
		InvestmentDate:               idb.InvestmentDate,
		AssetPerformanceAtInvestment: idb.AssetPerformanceAtInvestment,
		CreatedAt:                    idb.CreatedAt,
		UpdatedAt:                    idb.UpdatedAt,
	}, nil
}

func toDBInvestment(inv *investment.Investment) *investmentDB {
	return &investmentDB{
		Id:                           inv.Id.String(),
		UserId:                       inv.UserId.String(),
		AssetId:                      inv.AssetId.String(),
		InvestedAmount:               inv.InvestedAmount,
		InvestmentDate:               inv.InvestmentDate,
		AssetPerformanceAtInvestment: inv.AssetPerformanceAtInvestment,
		CreatedAt:                    inv.CreatedAt,
		UpdatedAt:                    inv.UpdatedAt,
	}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	err := r.DB.WithContext(ctx).Table("investments").Create(toDBInvestment(inv)).Error
	if err != nil {
		// backstop for the query-then-write race on (user, asset)
		if shared.IsUniqueConstraintError(err) {
			return appErrors.ErrConflict.WithError(err)
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *investment.Investment) error {
	idb := toDBInvestment(inv)
	result := r.DB.WithContext(ctx).Table("investments").Where("id = ?", idb.Id).
		Select("invested_amount", "investment_date", "asset_performance_at_investment", "updated_at").
		Updates(idb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("investments").Where("id = ?", id.String()).
		Delete(&investmentDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id ulid.ULID) (*investment.WithAsset, error) {
	var row investmentDB
	err := r.DB.WithContext(ctx).Table("investments").Where("id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrInvestmentNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	entity, err := toDomainInvestment(&row)
	if err != nil {
		return nil, err
	}

	withAsset := &investment.WithAsset{Investment: *entity}
	if err := r.attachAssets(ctx, []*investment.WithAsset{withAsset}); err != nil {
		return nil, err
	}
	return withAsset, nil
}

func (r *InvestmentRepository) GetByUserAndAsset(ctx context.Context, userID, assetID ulid.ULID) (*investment.Investment, error) {
	var row investmentDB
	err := r.DB.WithContext(ctx).Table("investments").
		Where("user_id = ? AND asset_id = ?", userID.String(), assetID.String()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainInvestment(&row)
}

func (r *InvestmentRepository) List(ctx context.Context, filters *investment.Filters, pagination *pkg.PaginationParams) ([]*investment.WithAsset, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	baseQuery := r.DB.WithContext(ctx).Table("investments")
	if filters != nil {
		if filters.UserId != nil {
			baseQuery = baseQuery.Where("user_id = ?", filters.UserId.String())
		}
		if filters.AssetId != nil {
			baseQuery = baseQuery.Where("asset_id = ?", filters.AssetId.String())
		}
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []investmentDB
	err := baseQuery.Order("investment_date DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*investment.WithAsset, 0, len(rows))
	for i := range rows {
		entity, err := toDomainInvestment(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, &investment.WithAsset{Investment: *entity})
	}

	if err := r.attachAssets(ctx, out); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *InvestmentRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Table("investments").
		Where("user_id = ?", userID.String()).
		Count(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

// attachAssets loads the referenced assets in one query and joins them
// onto the positions.
func (r *InvestmentRepository) attachAssets(ctx context.Context, investments []*investment.WithAsset) error {
	if len(investments) == 0 {
		return nil
	}

	ids := make([]string, 0, len(investments))
	seen := make(map[string]bool, len(investments))
	for _, inv := range investments {
		id := inv.AssetId.String()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	var rows []assetDB
	if err := r.DB.WithContext(ctx).Table("assets").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}

	byID := make(map[string]*assetDB, len(rows))
	for i := range rows {
		byID[rows[i].Id] = &rows[i]
	}

	for _, inv := range investments {
		if row, ok := byID[inv.AssetId.String()]; ok {
			entity, err := toDomainAsset(row)
			if err != nil {
				return err
			}
			inv.Asset = entity
		}
	}
	return nil
}
