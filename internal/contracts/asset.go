package contracts

type AssetCreateRequest struct {
	AssetName          string  `json:"assetName" binding:"required,min=2,max=100"`
	AssetType          string  `json:"assetType" binding:"required,oneof=Startup 'Crypto Fund' Farmland Collectible Other"`
	CurrentPerformance float64 `json:"currentPerformance" binding:"omitempty"`
	IsListed           *bool   `json:"isListed" binding:"omitempty"`
}

type AssetUpdateRequest struct {
	AssetName *string `json:"assetName" binding:"omitempty,min=2,max=100"`
	AssetType *string `json:"assetType" binding:"omitempty,oneof=Startup 'Crypto Fund' Farmland Collectible Other"`
	IsListed  *bool   `json:"isListed" binding:"omitempty"`
}

type AssetPerformanceUpdateRequest struct {
	CurrentPerformance *float64 `json:"currentPerformance" binding:"required"`
}
