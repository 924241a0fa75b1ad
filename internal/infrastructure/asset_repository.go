package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AssetRepository struct {
	DB *gorm.DB
}

var _ asset.Repository = (*AssetRepository)(nil)

type assetDB struct {
	Id                 string    `gorm:"type:varchar(26);primaryKey"`
	Name               string    `gorm:"type:varchar(100);not null;index"`
	Type               string    `gorm:"type:varchar(20);not null;index"`
	CurrentPerformance float64   `gorm:"not null;default:0"`
	IsListed           bool      `gorm:"not null;default:true"`
	LastUpdated        time.Time `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type snapshotDB struct {
	Id               string    `gorm:"type:varchar(26);primaryKey"`
	AssetId          string    `gorm:"type:varchar(26);index;not null"`
	Date             time.Time `gorm:"not null;index"`
	PercentageChange float64   `gorm:"not null"`
}

func toDomainAsset(adb *assetDB) (*asset.Asset, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &asset.Asset{
		Id:                 id,
		Name:               adb.Name,
		Type:               asset.Types(adb.Type),
		CurrentPerformance: adb.CurrentPerformance,
		IsListed:           adb.IsListed,
		LastUpdated:        adb.LastUpdated,
		CreatedAt:          adb.CreatedAt,
		UpdatedAt:          adb.UpdatedAt,
	}, nil
}

func toDBAsset(a *asset.Asset) *assetDB {
	return &assetDB{
		Id:                 a.Id.String(),
		Name:               a.Name,
		Type:               string(a.Type),
		CurrentPerformance: a.CurrentPerformance,
		IsListed:           a.IsListed,
		LastUpdated:        a.LastUpdated,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toDomainSnapshot(sdb *snapshotDB) (*asset.PerformanceSnapshot, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	assetID, err := pkg.ParseULID(sdb.AssetId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &asset.PerformanceSnapshot{
		Id:               id,
		AssetId:          assetID,
		Date:             sdb.Date,
		PercentageChange: sdb.PercentageChange,
	}, nil
}

func toDBSnapshot(s *asset.PerformanceSnapshot) *snapshotDB {
	return &snapshotDB{
		Id:               s.Id.String(),
		AssetId:          s.AssetId.String(),
		Date:             s.Date,
		PercentageChange: s.PercentageChange,
	}
}

func (r *AssetRepository) CreateWithSnapshot(ctx context.Context, a *asset.Asset, snap *asset.PerformanceSnapshot) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("assets").Create(toDBAsset(a)).Error; err != nil {
			return err
		}
		return tx.Table("asset_performance_snapshots").Create(toDBSnapshot(snap)).Error
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	adb := toDBAsset(a)
	result := r.DB.WithContext(ctx).Table("assets").Where("id = ?", adb.Id).
		Select("name", "type", "current_performance", "is_listed", "last_updated", "updated_at").
		Updates(adb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) UpdatePerformance(ctx context.Context, id ulid.ULID, percentageChange float64, at time.Time) (*asset.Asset, error) {
	var row assetDB

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table("assets").Where("id = ?", id.String()).
			UpdateColumn("current_performance", percentageChange).
			UpdateColumn("last_updated", at).
			UpdateColumn("updated_at", at)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		snapshot := &snapshotDB{
			Id:               pkg.GenerateULID(),
			AssetId:          id.String(),
			Date:             at,
			PercentageChange: percentageChange,
		}
		if err := tx.Table("asset_performance_snapshots").Create(snapshot).Error; err != nil {
			return err
		}

		return tx.Table("assets").Where("id = ?", id.String()).First(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAssetNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return toDomainAsset(&row)
}

func (r *AssetRepository) DeleteCascade(ctx context.Context, id ulid.ULID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row assetDB
		if err := tx.Table("assets").Where("id = ?", id.String()).First(&row).Error; err != nil {
			return err
		}

		if err := tx.Table("asset_performance_snapshots").Where("asset_id = ?", id.String()).
			Delete(&snapshotDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("investments").Where("asset_id = ?", id.String()).
			Delete(&investmentDB{}).Error; err != nil {
			return err
		}
		return tx.Table("assets").Where("id = ?", id.String()).Delete(&assetDB{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrAssetNotFound
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
	var row assetDB
	err := r.DB.WithContext(ctx).Table("assets").Where("id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAssetNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainAsset(&row)
}

func (r *AssetRepository) List(ctx context.Context, filters *asset.Filters, pagination *pkg.PaginationParams) ([]*asset.Asset, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("assets")

	if filters != nil {
		if filters.Search != nil && *filters.Search != "" {
			baseQuery = baseQuery.Where("name ILIKE ?", "%"+*filters.Search+"%")
		}
		if filters.Type != nil && *filters.Type != "" && *filters.Type != "All" {
			baseQuery = baseQuery.Where("type = ?", *filters.Type)
		}
	}

	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainAsset)
}

func (r *AssetRepository) GetByType(ctx context.Context, assetType asset.Types) ([]*asset.Asset, error) {
	var rows []assetDB
	err := r.DB.WithContext(ctx).Table("assets").
		Where("type = ?", string(assetType)).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		entity, err := toDomainAsset(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *AssetRepository) GetPerformanceHistory(ctx context.Context, assetID ulid.ULID, query asset.HistoryQuery) ([]*asset.PerformanceSnapshot, error) {
	q := r.DB.WithContext(ctx).Table("asset_performance_snapshots").
		Where("asset_id = ?", assetID.String())

	if query.StartDate != nil {
		q = q.Where("date >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		q = q.Where("date <= ?", *query.EndDate)
	}

	q = q.Order("date DESC")
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	var rows []snapshotDB
	if err := q.Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*asset.PerformanceSnapshot, 0, len(rows))
	for i := range rows {
		snap, err := toDomainSnapshot(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}
