package asset

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// PerformanceSnapshot is an append-only record of an asset's performance
// at the moment a performance mutation happened.
type PerformanceSnapshot struct {
	Id               ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	AssetId          ulid.ULID `gorm:"type:varchar(26);index:idx_snapshots_asset_id;not null" json:"assetId"`
	Date             time.Time `gorm:"not null;index:idx_snapshots_date" json:"date"`
	PercentageChange float64   `gorm:"type:decimal(8,2);not null" json:"percentageChange"`
}

func (PerformanceSnapshot) TableName() string {
	return "asset_performance_snapshots"
}
