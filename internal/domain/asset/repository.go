package asset

import (
	"context"
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	Search *string
	Type   *string
}

type HistoryQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

type Repository interface {
	// CreateWithSnapshot persists the asset and its first performance
	// snapshot in a single transaction.
	CreateWithSnapshot(ctx context.Context, a *Asset, snap *PerformanceSnapshot) error
	Update(ctx context.Context, a *Asset) error
	// UpdatePerformance sets the asset's current performance and appends a
	// snapshot in a single transaction, returning the updated asset.
	UpdatePerformance(ctx context.Context, id ulid.ULID, percentageChange float64, at time.Time) (*Asset, error)
	// DeleteCascade removes the asset, its snapshots and every investment
	// referencing it in a single transaction.
	DeleteCascade(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Asset, error)
	List(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Asset, int64, error)
	GetByType(ctx context.Context, assetType Types) ([]*Asset, error)
	GetPerformanceHistory(ctx context.Context, assetID ulid.ULID, query HistoryQuery) ([]*PerformanceSnapshot, error)
}
