package asset

import (
	"context"

	"github.com/IdrisAkintobi/altfolio/internal/contracts"
	"github.com/IdrisAkintobi/altfolio/internal/domain/shared"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateAsset(ctx context.Context, req contracts.AssetCreateRequest) (*Asset, error) {
	name, err := validateName(req.AssetName)
	if err != nil {
		return nil, err
	}

	assetType := Types(req.AssetType)
	if !assetType.IsValid() {
		return nil, appErrors.NewValidationError("assetType", "unknown asset type")
	}

	isListed := true
	if req.IsListed != nil {
		isListed = *req.IsListed
	}

	now := pkg.SetTimestamps()
	entity := &Asset{
		Id:                 pkg.GenerateULIDObject(),
		Name:               name,
		Type:               assetType,
		CurrentPerformance: req.CurrentPerformance,
		IsListed:           isListed,
		LastUpdated:        now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	snapshot := &PerformanceSnapshot{
		Id:               pkg.GenerateULIDObject(),
		AssetId:          entity.Id,
		Date:             now,
		PercentageChange: entity.CurrentPerformance,
	}

	if err := s.Repository.CreateWithSnapshot(ctx, entity, snapshot); err != nil {
		return nil, err
	}

	return entity, nil
}

// UpdateAsset changes metadata only. Performance changes go through
// UpdatePerformance so that every change leaves a snapshot behind.
func (s *Service) UpdateAsset(ctx context.Context, id ulid.ULID, req contracts.AssetUpdateRequest) (*Asset, error) {
	entity, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AssetName != nil {
		name, err := validateName(*req.AssetName)
		if err != nil {
			return nil, err
		}
		entity.Name = name
	}

	if req.AssetType != nil && *req.AssetType != "" {
		assetType := Types(*req.AssetType)
		if !assetType.IsValid() {
			return nil, appErrors.NewValidationError("assetType", "unknown asset type")
		}
		entity.Type = assetType
	}

	if req.IsListed != nil {
		entity.IsListed = *req.IsListed
	}

	now := pkg.SetTimestamps()
	entity.LastUpdated = now
	entity.UpdatedAt = now

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (s *Service) UpdatePerformance(ctx context.Context, id ulid.ULID, percentageChange float64) (*Asset, error) {
	return s.Repository.UpdatePerformance(ctx, id, percentageChange, pkg.SetTimestamps())
}

func (s *Service) DeleteAsset(ctx context.Context, id ulid.ULID) error {
	return s.Repository.DeleteCascade(ctx, id)
}

func (s *Service) GetAssetByID(ctx context.Context, id ulid.ULID) (*Asset, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) ListAssets(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Asset, int64, error) {
	return s.Repository.List(ctx, filters, pagination)
}

func (s *Service) GetAssetsByType(ctx context.Context, assetType string) ([]*Asset, error) {
	typed := Types(assetType)
	if !typed.IsValid() {
		return nil, appErrors.NewValidationError("assetType", "unknown asset type")
	}
	return s.Repository.GetByType(ctx, typed)
}

func (s *Service) GetPerformanceHistory(ctx context.Context, assetID ulid.ULID, query HistoryQuery) ([]*PerformanceSnapshot, error) {
	if _, err := s.Repository.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return nil, appErrors.NewValidationError("startDate", "must not be after endDate")
	}

	return s.Repository.GetPerformanceHistory(ctx, assetID, query)
}

// IsOpenForInvestment reports whether the asset currently accepts new
// investments. Existing positions stay visible while unlisted.
func (a *Asset) IsOpenForInvestment() bool {
	return a.IsListed
}

func validateName(raw string) (string, error) {
	name := shared.NormalizeName(raw)
	if len(name) < 2 {
		return "", appErrors.NewValidationError("assetName", "must be at least 2 characters")
	}
	if len(name) > 100 {
		return "", appErrors.NewValidationError("assetName", "must be at most 100 characters")
	}
	return name, nil
}
