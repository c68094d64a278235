package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminUserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewAdminUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *AdminUserHandler {
	return &AdminUserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Filter by username or email substring"
// @Success 200 {array} queries.UserView
// @Router /admin/users [get]
func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	views, err := h.userQueries.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := views[:0]
		for _, v := range views {
			if strings.Contains(strings.ToLower(v.Username), q) || strings.Contains(strings.ToLower(v.Email), q) {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Change user role
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body request.ChangeRoleRequest true "New role"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id}/role [put]
func (h *AdminUserHandler) ChangeRole(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	var req reqdto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	if err := h.userCommands.ChangeRole(c.Request.Context(), actorID, targetID, req.Role); err != nil {
		switch {
		case errors.Is(err, commands.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid role",
			})
		case errors.Is(err, commands.ErrLastAdmin):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot demote the last admin",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete user
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	if err := h.userCommands.Delete(c.Request.Context(), actorID, targetID); err != nil {
		switch {
		case errors.Is(err, commands.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrSelfDeletion):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot delete own account",
			})
		case errors.Is(err, commands.ErrLastAdmin):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot delete the last admin",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
