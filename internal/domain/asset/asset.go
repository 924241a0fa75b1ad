package asset

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Asset struct {
	Id                 ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(100);not null;index:idx_assets_name" json:"assetName"`
	Type               Types     `gorm:"type:varchar(20);not null;index:idx_assets_type" json:"assetType"`
	CurrentPerformance float64   `gorm:"type:decimal(8,2);not null;default:0" json:"currentPerformance"`
	IsListed           bool      `gorm:"not null;default:true" json:"isListed"`
	LastUpdated        time.Time `gorm:"not null" json:"lastUpdated"`
	CreatedAt          time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Asset) TableName() string {
	return "assets"
}

type Types string

const (
	TypeStartup     Types = "Startup"
	TypeCryptoFund  Types = "Crypto Fund"
	TypeFarmland    Types = "Farmland"
	TypeCollectible Types = "Collectible"
	TypeOther       Types = "Other"
)

func (t Types) IsValid() bool {
	switch t {
	case TypeStartup, TypeCryptoFund, TypeFarmland, TypeCollectible, TypeOther:
		return true
	}
	return false
}

func AllTypes() []Types {
	return []Types{TypeStartup, TypeCryptoFund, TypeFarmland, TypeCollectible, TypeOther}
}
