package routes

import (
	"time"

	"github.com/IdrisAkintobi/altfolio/internal/contracts"
	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInvestment(c *gin.Context) {
	var body contracts.InvestmentCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	authUser, err := h.getAuthUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	assetID, err := pkg.ParseULID(body.AssetID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("assetId", "invalid id format"))
		return
	}

	var investmentDate time.Time
	if body.InvestmentDate != "" {
		investmentDate, err = time.Parse(time.RFC3339, body.InvestmentDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("investmentDate", "must be a valid RFC3339 date"))
			return
		}
	}

	req := contracts.SubmitInvestmentRequestDomain{
		UserId:         authUser.Id,
		AssetId:        assetID,
		InvestedAmount: body.InvestedAmount,
		InvestmentDate: investmentDate,
	}

	ctx := c.Request.Context()
	entity, err := h.InvestmentService.SubmitInvestment(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondCreated(c, "Investment submitted successfully", entity)
}

func (h *Handler) ListInvestments(c *gin.Context) {
	authUser, err := h.getAuthUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := &investment.Filters{}

	if assetIDStr := c.Query("assetId"); assetIDStr != "" {
		assetID, err := pkg.ParseULID(assetIDStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("assetId", "invalid id format"))
			return
		}
		filters.AssetId = &assetID
	}

	// user filter is admin-only; the service pins viewers to themselves
	if userIDStr := c.Query("userId"); userIDStr != "" && authUser.Role == user.RoleAdmin {
		userID, err := pkg.ParseULID(userIDStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("userId", "invalid id format"))
			return
		}
		filters.UserId = &userID
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	investments, total, err := h.InvestmentService.ListInvestments(ctx, authUser, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondPaginated(c, "Investments retrieved successfully", investments, pagination, total)
}

func (h *Handler) GetInvestment(c *gin.Context) {
	investmentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	authUser, err := h.getAuthUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.InvestmentService.GetInvestment(ctx, investmentID, authUser)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Investment retrieved successfully", entity)
}

func (h *Handler) DeleteInvestment(c *gin.Context) {
	investmentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	authUser, err := h.getAuthUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.InvestmentService.DeleteInvestment(ctx, investmentID, authUser); err != nil {
		h.respondError(c, err)
		return
	}

	respondSuccess(c, "Investment deleted successfully", nil)
}
