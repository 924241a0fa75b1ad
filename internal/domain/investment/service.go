package investment

import (
	"context"

	"github.com/IdrisAkintobi/altfolio/internal/contracts"
	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// AuthUser is the already-verified identity attached to a request.
type AuthUser struct {
	Id   ulid.ULID
	Role user.Role
}

type AssetGetter interface {
	GetAssetByID(ctx context.Context, id ulid.ULID) (*asset.Asset, error)
}

type Service struct {
	Repository   Repository
	AssetService AssetGetter
}

func NewService(repo Repository, assetService AssetGetter) *Service {
	return &Service{Repository: repo, AssetService: assetService}
}

// SubmitInvestment resolves a contribution into either a fresh position
// or a restake of the user's existing position in the asset.
//
// A restake sums the contributed amounts, overwrites the investment date
// and resets the performance baseline to the asset's current value. It is
// like withdrawing everything and investing the total at the current
// performance: the unrealized gain or loss on the prior balance is not
// folded into the principal. Not idempotent; retries double the amount.
func (s *Service) SubmitInvestment(ctx context.Context, req contracts.SubmitInvestmentRequestDomain) (*WithAsset, error) {
	if req.InvestedAmount < 0 {
		return nil, appErrors.NewValidationError("investedAmount", "must not be negative")
	}

	assetEntity, err := s.AssetService.GetAssetByID(ctx, req.AssetId)
	if err != nil {
		return nil, err
	}

	if !assetEntity.IsOpenForInvestment() {
		return nil, appErrors.ErrAssetNotListed.WithDetails(map[string]interface{}{
			"assetId": req.AssetId.String(),
		})
	}

	date := req.InvestmentDate
	if date.IsZero() {
		date = pkg.SetTimestamps()
	}

	existing, err := s.Repository.GetByUserAndAsset(ctx, req.UserId, req.AssetId)
	if err != nil {
		return nil, err
	}

	now := pkg.SetTimestamps()

	if existing == nil {
		entity := &Investment{
			Id:                           pkg.GenerateULIDObject(),
			UserId:                       req.UserId,
			AssetId:                      req.AssetId,
			InvestedAmount:               req.InvestedAmount,
			InvestmentDate:               date,
			AssetPerformanceAtInvestment: assetEntity.CurrentPerformance,
			CreatedAt:                    now,
			UpdatedAt:                    now,
		}
		if err := s.Repository.Create(ctx, entity); err != nil {
			return nil, err
		}
		return s.withValue(entity, assetEntity), nil
	}

	existing.InvestedAmount += req.InvestedAmount
	existing.InvestmentDate = date
	existing.AssetPerformanceAtInvestment = assetEntity.CurrentPerformance
	existing.UpdatedAt = now

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, err
	}

	return s.withValue(existing, assetEntity), nil
}

// ListInvestments returns all positions for admins and only the caller's
// own positions otherwise, each projected against its asset's live
// performance.
func (s *Service) ListInvestments(ctx context.Context, authUser AuthUser, filters *Filters, pagination *pkg.PaginationParams) ([]*WithAsset, int64, error) {
	if filters == nil {
		filters = &Filters{}
	}
	if authUser.Role != user.RoleAdmin {
		filters.UserId = &authUser.Id
	}

	investments, total, err := s.Repository.List(ctx, filters, pagination)
	if err != nil {
		return nil, 0, err
	}

	for _, inv := range investments {
		s.project(inv)
	}

	return investments, total, nil
}

func (s *Service) GetInvestment(ctx context.Context, id ulid.ULID, authUser AuthUser) (*WithAsset, error) {
	entity, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if authUser.Role != user.RoleAdmin && entity.UserId != authUser.Id {
		return nil, appErrors.ErrResourceNotOwned
	}

	s.project(entity)
	return entity, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, id ulid.ULID, authUser AuthUser) error {
	entity, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if authUser.Role != user.RoleAdmin && entity.UserId != authUser.Id {
		return appErrors.ErrResourceNotOwned
	}

	return s.Repository.Delete(ctx, id)
}

func (s *Service) withValue(inv *Investment, a *asset.Asset) *WithAsset {
	return &WithAsset{
		Investment:   *inv,
		Asset:        a,
		CurrentValue: CurrentValue(inv.InvestedAmount, inv.AssetPerformanceAtInvestment, a.CurrentPerformance),
	}
}

func (s *Service) project(inv *WithAsset) {
	if inv.Asset == nil {
		inv.CurrentValue = CurrentValue(inv.InvestedAmount, inv.AssetPerformanceAtInvestment, inv.AssetPerformanceAtInvestment)
		return
	}
	inv.CurrentValue = CurrentValue(inv.InvestedAmount, inv.AssetPerformanceAtInvestment, inv.Asset.CurrentPerformance)
}
