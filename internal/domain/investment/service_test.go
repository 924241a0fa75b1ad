package investment_test

import (
	"context"
	"testing"
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/contracts"
	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeInvestmentRepository struct {
	createFn            func(ctx context.Context, inv *investment.Investment) error
	updateFn            func(ctx context.Context, inv *investment.Investment) error
	deleteFn            func(ctx context.Context, id ulid.ULID) error
	getByIDFn           func(ctx context.Context, id ulid.ULID) (*investment.WithAsset, error)
	getByUserAndAssetFn func(ctx context.Context, userID, assetID ulid.ULID) (*investment.Investment, error)
	listFn              func(ctx context.Context, filters *investment.Filters, pagination *pkg.PaginationParams) ([]*investment.WithAsset, int64, error)
	countByUserFn       func(ctx context.Context, userID ulid.ULID) (int64, error)
}

func (f *fakeInvestmentRepository) Create(ctx context.Context, inv *investment.Investment) error {
	if f.createFn != nil {
		return f.createFn(ctx, inv)
	}
	return nil
}

func (f *fakeInvestmentRepository) Update(ctx context.Context, inv *investment.Investment) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, inv)
	}
	return nil
}

func (f *fakeInvestmentRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeInvestmentRepository) GetByID(ctx context.Context, id ulid.ULID) (*investment.WithAsset, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrInvestmentNotFound
}

func (f *fakeInvestmentRepository) GetByUserAndAsset(ctx context.Context, userID, assetID ulid.ULID) (*investment.Investment, error) {
	if f.getByUserAndAssetFn != nil {
		return f.getByUserAndAssetFn(ctx, userID, assetID)
	}
	return nil, nil
}

func (f *fakeInvestmentRepository) List(ctx context.Context, filters *investment.Filters, pagination *pkg.PaginationParams) ([]*investment.WithAsset, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filters, pagination)
	}
	return nil, 0, nil
}

func (f *fakeInvestmentRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	if f.countByUserFn != nil {
		return f.countByUserFn(ctx, userID)
	}
	return 0, nil
}

type fakeAssetGetter struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*asset.Asset, error)
}

func (f *fakeAssetGetter) GetAssetByID(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrAssetNotFound
}

func listedAsset(id ulid.ULID, performance float64) *asset.Asset {
	return &asset.Asset{
		Id:                 id,
		Name:               "Vintage Wine Collection",
		Type:               asset.TypeCollectible,
		CurrentPerformance: performance,
		IsListed:           true,
		LastUpdated:        time.Now(),
	}
}

func TestSubmitInvestmentFreshPosition(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	assetID := ulid.Make()

	var created *investment.Investment
	repo := &fakeInvestmentRepository{
		createFn: func(ctx context.Context, inv *investment.Investment) error {
			created = inv
			return nil
		},
	}
	svc := investment.Service{
		Repository: repo,
		AssetService: &fakeAssetGetter{
			getByIDFn: func(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
				return listedAsset(id, 42.5), nil
			},
		},
	}

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.SubmitInvestment(context.Background(), contracts.SubmitInvestmentRequestDomain{
		UserId:         userID,
		AssetId:        assetID,
		InvestedAmount: 10000,
		InvestmentDate: date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatalf("expected a create call")
	}
	if created.AssetPerformanceAtInvestment != 42.5 {
		t.Fatalf("expected baseline 42.5, got %v", created.AssetPerformanceAtInvestment)
	}
	if !created.InvestmentDate.Equal(date) {
		t.Fatalf("expected investment date %v, got %v", date, created.InvestmentDate)
	}
	if result.CurrentValue != 10000 {
		t.Fatalf("expected value 10000 right after investing, got %v", result.CurrentValue)
	}
}

func TestSubmitInvestmentRestake(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	assetID := ulid.Make()

	// 10000 invested at baseline 0, asset then moved to +20; a 5000
	// restake sums amounts and resets the baseline, discarding the
	// unrealized 2000 gain. A later move to +30 yields 15000 * 1.1.
	existing := &investment.Investment{
		Id:                           ulid.Make(),
		UserId:                       userID,
		AssetId:                      assetID,
		InvestedAmount:               10000,
		InvestmentDate:               time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		AssetPerformanceAtInvestment: 0,
	}

	var updated *investment.Investment
	repo := &fakeInvestmentRepository{
		getByUserAndAssetFn: func(ctx context.Context, uid, aid ulid.ULID) (*investment.Investment, error) {
			copy := *existing
			return &copy, nil
		},
		updateFn: func(ctx context.Context, inv *investment.Investment) error {
			updated = inv
			return nil
		},
	}
	svc := investment.Service{
		Repository: repo,
		AssetService: &fakeAssetGetter{
			getByIDFn: func(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
				return listedAsset(id, 20), nil
			},
		},
	}

	restakeDate := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	result, err := svc.SubmitInvestment(context.Background(), contracts.SubmitInvestmentRequestDomain{
		UserId:         userID,
		AssetId:        assetID,
		InvestedAmount: 5000,
		InvestmentDate: restakeDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatalf("expected an update call, not create")
	}
	if updated.InvestedAmount != 15000 {
		t.Fatalf("expected amount 15000, got %v", updated.InvestedAmount)
	}
	if updated.AssetPerformanceAtInvestment != 20 {
		t.Fatalf("expected baseline reset to 20, got %v", updated.AssetPerformanceAtInvestment)
	}
	if !updated.InvestmentDate.Equal(restakeDate) {
		t.Fatalf("expected date overwritten to %v, got %v", restakeDate, updated.InvestmentDate)
	}
	if result.CurrentValue != 15000 {
		t.Fatalf("expected value 15000 right after restake, got %v", result.CurrentValue)
	}

	atThirty := investment.CurrentValue(updated.InvestedAmount, updated.AssetPerformanceAtInvestment, 30)
	if atThirty != 16500 {
		t.Fatalf("expected 16500 after drift to +30, got %v", atThirty)
	}
}

func TestSubmitInvestmentRejections(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	assetID := ulid.Make()

	tests := []struct {
		name        string
		amount      float64
		asset       *asset.Asset
		assetErr    error
		wantErrCode string
	}{
		{
			name:        "negative amount",
			amount:      -100,
			asset:       listedAsset(assetID, 10),
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "asset not found",
			amount:      100,
			assetErr:    appErrors.ErrAssetNotFound,
			wantErrCode: appErrors.ErrAssetNotFound.Code,
		},
		{
			name:   "unlisted asset",
			amount: 100,
			asset: &asset.Asset{
				Id:       assetID,
				Name:     "Closed Fund",
				Type:     asset.TypeCryptoFund,
				IsListed: false,
			},
			wantErrCode: appErrors.ErrAssetNotListed.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var wrote bool
			repo := &fakeInvestmentRepository{
				createFn: func(ctx context.Context, inv *investment.Investment) error {
					wrote = true
					return nil
				},
				updateFn: func(ctx context.Context, inv *investment.Investment) error {
					wrote = true
					return nil
				},
			}
			svc := investment.Service{
				Repository: repo,
				AssetService: &fakeAssetGetter{
					getByIDFn: func(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
						if tt.assetErr != nil {
							return nil, tt.assetErr
						}
						return tt.asset, nil
					},
				},
			}

			_, err := svc.SubmitInvestment(context.Background(), contracts.SubmitInvestmentRequestDomain{
				UserId:         userID,
				AssetId:        assetID,
				InvestedAmount: tt.amount,
			})
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
			if wrote {
				t.Fatalf("expected no repository writes")
			}
		})
	}
}

func TestSubmitInvestmentDefaultsDateToNow(t *testing.T) {
	t.Parallel()

	var created *investment.Investment
	repo := &fakeInvestmentRepository{
		createFn: func(ctx context.Context, inv *investment.Investment) error {
			created = inv
			return nil
		},
	}
	svc := investment.Service{
		Repository: repo,
		AssetService: &fakeAssetGetter{
			getByIDFn: func(ctx context.Context, id ulid.ULID) (*asset.Asset, error) {
				return listedAsset(id, 0), nil
			},
		},
	}

	before := time.Now()
	_, err := svc.SubmitInvestment(context.Background(), contracts.SubmitInvestmentRequestDomain{
		UserId:         ulid.Make(),
		AssetId:        ulid.Make(),
		InvestedAmount: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatalf("expected a create call")
	}
	if created.InvestmentDate.Before(before) || created.InvestmentDate.After(time.Now()) {
		t.Fatalf("expected investment date to default to now, got %v", created.InvestmentDate)
	}
}

func TestListInvestmentsScopesViewersToThemselves(t *testing.T) {
	t.Parallel()

	viewerID := ulid.Make()
	otherID := ulid.Make()

	var gotFilters *investment.Filters
	repo := &fakeInvestmentRepository{
		listFn: func(ctx context.Context, filters *investment.Filters, pagination *pkg.PaginationParams) ([]*investment.WithAsset, int64, error) {
			gotFilters = filters
			return nil, 0, nil
		},
	}
	svc := investment.Service{Repository: repo, AssetService: &fakeAssetGetter{}}

	_, _, err := svc.ListInvestments(context.Background(), investment.AuthUser{
		Id:   viewerID,
		Role: user.RoleViewer,
	}, &investment.Filters{UserId: &otherID}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilters == nil || gotFilters.UserId == nil {
		t.Fatalf("expected a user filter")
	}
	if *gotFilters.UserId != viewerID {
		t.Fatalf("expected viewer pinned to own positions")
	}
}

func TestListInvestmentsProjectsCurrentValues(t *testing.T) {
	t.Parallel()

	adminID := ulid.Make()
	assetID := ulid.Make()

	repo := &fakeInvestmentRepository{
		listFn: func(ctx context.Context, filters *investment.Filters, pagination *pkg.PaginationParams) ([]*investment.WithAsset, int64, error) {
			return []*investment.WithAsset{
				{
					Investment: investment.Investment{
						InvestedAmount:               10000,
						AssetPerformanceAtInvestment: 10,
					},
					Asset: listedAsset(assetID, 25),
				},
			}, 1, nil
		},
	}
	svc := investment.Service{Repository: repo, AssetService: &fakeAssetGetter{}}

	investments, total, err := svc.ListInvestments(context.Background(), investment.AuthUser{
		Id:   adminID,
		Role: user.RoleAdmin,
	}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(investments) != 1 {
		t.Fatalf("expected one investment, got %d (total %d)", len(investments), total)
	}
	if investments[0].CurrentValue != 11500 {
		t.Fatalf("expected current value 11500, got %v", investments[0].CurrentValue)
	}
}

func TestGetInvestmentOwnership(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	strangerID := ulid.Make()
	investmentID := ulid.Make()

	repo := &fakeInvestmentRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*investment.WithAsset, error) {
			return &investment.WithAsset{
				Investment: investment.Investment{
					Id:             investmentID,
					UserId:         ownerID,
					InvestedAmount: 100,
				},
			}, nil
		},
	}
	svc := investment.Service{Repository: repo, AssetService: &fakeAssetGetter{}}

	ctx := context.Background()

	if _, err := svc.GetInvestment(ctx, investmentID, investment.AuthUser{Id: ownerID, Role: user.RoleViewer}); err != nil {
		t.Fatalf("owner should see own investment: %v", err)
	}
	if _, err := svc.GetInvestment(ctx, investmentID, investment.AuthUser{Id: strangerID, Role: user.RoleAdmin}); err != nil {
		t.Fatalf("admin should see any investment: %v", err)
	}

	_, err := svc.GetInvestment(ctx, investmentID, investment.AuthUser{Id: strangerID, Role: user.RoleViewer})
	if err == nil {
		t.Fatalf("expected error for non-owner viewer")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrResourceNotOwned.Code, err)
	}
}

func TestDeleteInvestmentOwnership(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	strangerID := ulid.Make()
	investmentID := ulid.Make()

	var deleted bool
	repo := &fakeInvestmentRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*investment.WithAsset, error) {
			return &investment.WithAsset{
				Investment: investment.Investment{Id: investmentID, UserId: ownerID},
			}, nil
		},
		deleteFn: func(ctx context.Context, id ulid.ULID) error {
			deleted = true
			return nil
		},
	}
	svc := investment.Service{Repository: repo, AssetService: &fakeAssetGetter{}}

	ctx := context.Background()

	err := svc.DeleteInvestment(ctx, investmentID, investment.AuthUser{Id: strangerID, Role: user.RoleViewer})
	if err == nil {
		t.Fatalf("expected error for non-owner viewer")
	}
	if deleted {
		t.Fatalf("expected no delete call")
	}

	if err := svc.DeleteInvestment(ctx, investmentID, investment.AuthUser{Id: ownerID, Role: user.RoleViewer}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatalf("expected delete call")
	}
}
