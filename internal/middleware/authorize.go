package middleware

import (
	"net/http"

	"github.com/IdrisAkintobi/altfolio/internal/domain/user"
	appErrors "github.com/IdrisAkintobi/altfolio/internal/errors"

	"github.com/gin-gonic/gin"
)

// RequireAdmin assumes AuthMiddleware already ran and set the role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != string(user.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin access required",
				"error": gin.H{
					"code": appErrors.ErrForbidden.Code,
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
