package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type InvestmentCreateRequest struct {
	AssetID        string  `json:"assetId" binding:"required"`
	InvestedAmount float64 `json:"investedAmount" binding:"required,gt=0"`
	InvestmentDate string  `json:"investmentDate" binding:"omitempty"`
}

// SubmitInvestmentRequestDomain is the resolved form handed to the
// investment service after id and date parsing.
type SubmitInvestmentRequestDomain struct {
	UserId         ulid.ULID
	AssetId        ulid.ULID
	InvestedAmount float64
	InvestmentDate time.Time
}

type InvestmentFiltersRequest struct {
	AssetID *string
	UserID  *string
}
