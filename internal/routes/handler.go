package routes

import (
	"github.com/IdrisAkintobi/altfolio/internal/domain/asset"
	"github.com/IdrisAkintobi/altfolio/internal/domain/auth"
	"github.com/IdrisAkintobi/altfolio/internal/domain/investment"
	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"
	"github.com/IdrisAkintobi/altfolio/internal/logger"
	"github.com/IdrisAkintobi/altfolio/internal/middleware"
	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	UserService       *user.Service
	AuthService       *auth.Service
	JwtService        *middleware.JwtService
	AssetService      *asset.Service
	InvestmentService *investment.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) getAuthUser(c *gin.Context) (investment.AuthUser, error) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		return investment.AuthUser{}, err
	}

	role := user.RoleViewer
	if roleStr, exists := c.Get("role"); exists {
		if r, ok := roleStr.(string); ok && user.Role(r).IsValid() {
			role = user.Role(r)
		}
	}

	return investment.AuthUser{Id: userID, Role: role}, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	errBody := gin.H{"code": appErr.Code}
	if len(appErr.Details) > 0 {
		errBody["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, gin.H{
		"status":  "error",
		"message": appErr.Message,
		"error":   errBody,
	})
}
