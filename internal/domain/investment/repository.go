package investment

import (
	"context"

	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	UserId  *ulid.ULID
	AssetId *ulid.ULID
}

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	Update(ctx context.Context, inv *Investment) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*WithAsset, error)
	// GetByUserAndAsset returns (nil, nil) when the user holds no
	// position in the asset.
	GetByUserAndAsset(ctx context.Context, userID, assetID ulid.ULID) (*Investment, error)
	List(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*WithAsset, int64, error)
	CountByUser(ctx context.Context, userID ulid.ULID) (int64, error)
}
