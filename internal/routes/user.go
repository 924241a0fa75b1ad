package routes

import (
	"github.com/IdrisAkintobi/altfolio/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	users, total, err := h.UserService.ListUsers(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]contracts.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}

	respondPaginated(c, "Users retrieved successfully", responses, pagination, total)
}
