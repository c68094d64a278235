package api

import (
	"net/http"

	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminSeedHandler struct {
	seedCommands commands.SeedCommands
}

func NewAdminSeedHandler(seedCommands commands.SeedCommands) *AdminSeedHandler {
	return &AdminSeedHandler{seedCommands: seedCommands}
}

// @Summary Seed demo data
// @Description Loads demo courts, coaches and equipment. Existing rows are kept. Debug mode only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/seed [post]
func (h *AdminSeedHandler) SeedDemoData(c *gin.Context) {
	if err := h.seedCommands.SeedDemoData(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Demo data seeded",
	})
}
