package routes

import (
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/contracts"
	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAsset(c *gin.Context) {
	var body contracts.AssetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AssetService.CreateAsset(ctx, body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondCreated(c, "Asset created successfully", entity)
}

func (h *Handler) UpdateAsset(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	var body contracts.AssetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AssetService.UpdateAsset(ctx, assetID, body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Asset updated successfully", entity)
}

func (h *Handler) UpdateAssetPerformance(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	var body contracts.AssetPerformanceUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AssetService.UpdatePerformance(ctx, assetID, *body.CurrentPerformance)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Asset performance updated successfully", entity)
}

func (h *Handler) DeleteAsset(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	if err := h.AssetService.DeleteAsset(ctx, assetID); err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Asset deleted successfully", nil)
}

func (h *Handler) GetAsset(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AssetService.GetAssetByID(ctx, assetID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Asset retrieved successfully", entity)
}

func (h *Handler) ListAssets(c *gin.Context) {
	var filters *asset.Filters

	search := c.Query("search")
	typeStr := c.Query("type")
	if search != "" || typeStr != "" {
		filters = &asset.Filters{}
		if search != "" {
			filters.Search = &search
		}
		if typeStr != "" {
			filters.Type = &typeStr
		}
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	assets, total, err := h.AssetService.ListAssets(ctx, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondPaginated(c, "Assets retrieved successfully", assets, pagination, total)
}

func (h *Handler) GetAssetsByType(c *gin.Context) {
	ctx := c.Request.Context()
	assets, err := h.AssetService.GetAssetsByType(ctx, c.Param("type"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Assets retrieved successfully", assets)
}

func (h *Handler) GetAssetTypes(c *gin.Context) {
	respondSuccess(c, "Asset types retrieved successfully", asset.AllTypes())
}

func (h *Handler) GetAssetPerformanceHistory(c *gin.Context) {
	assetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	var query asset.HistoryQuery

	if startStr := c.Query("startDate"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("startDate", "must be a valid RFC3339 date"))
			return
		}
		query.StartDate = &start
	}

	if endStr := c.Query("endDate"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("endDate", "must be a valid RFC3339 date"))
			return
		}
		query.EndDate = &end
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := pkg.ParseInt(limitStr)
		if err != nil || limit < 0 {
			h.respondError(c, appErrors.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		query.Limit = limit
	}

	ctx := c.Request.Context()
	snapshots, err := h.AssetService.GetPerformanceHistory(ctx, assetID, query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Performance history retrieved successfully", snapshots)
}
