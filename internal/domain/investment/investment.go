package investment

import (
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"

	"github.com/oklog/ulid/v2"
)

// Investment is a user's single position in an asset. The aggregator
// keeps at most one row per (UserId, AssetId); adding money to an
// existing position merges into it (see Service.SubmitInvestment).
type Investment struct {
	Id             ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId         ulid.ULID `gorm:"type:varchar(26);not null;index:idx_investments_user_asset,unique" json:"userId"`
	AssetId        ulid.ULID `gorm:"type:varchar(26);not null;index:idx_investments_user_asset,unique" json:"assetId"`
	InvestedAmount float64   `gorm:"type:decimal(15,2);not null;default:0" json:"investedAmount"`
	// InvestmentDate tracks the most recent contribution, not the first.
	InvestmentDate time.Time `gorm:"not null;index:idx_investments_date" json:"investmentDate"`
	// AssetPerformanceAtInvestment is the asset's performance captured
	// when the position was opened or last restaked.
	AssetPerformanceAtInvestment float64   `gorm:"type:decimal(8,2);not null" json:"assetPerformanceAtInvestment"`
	CreatedAt                    time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt                    time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Investment) TableName() string {
	return "investments"
}

// WithAsset joins a position with its asset and the value projected from
// the asset's live performance. CurrentValue is derived on every read and
// never stored.
type WithAsset struct {
	Investment
	Asset        *asset.Asset `json:"asset,omitempty"`
	CurrentValue float64      `json:"currentValue"`
}
