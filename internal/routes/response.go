package routes

import (
	"net/http"

	"github.com/IdrisAkintobi/altfolio/internal/pkg"

	"github.com/gin-gonic/gin"
)

func respondSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func respondPaginated(c *gin.Context, message string, data interface{}, pagination *pkg.PaginationParams, total int64) {
	pagination = pkg.NormalizePagination(pagination)
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    message,
		"data":       data,
		"pagination": pkg.NewPaginationMeta(pagination.Page, pagination.Limit, total),
	})
}
