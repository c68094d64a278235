package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminCatalogHandler manages courts, coaches and equipment.
type AdminCatalogHandler struct {
	courtCommands     commands.CourtCommands
	coachCommands     commands.CoachCommands
	equipmentCommands commands.EquipmentCommands
}

func NewAdminCatalogHandler(
	courtCommands commands.CourtCommands,
	coachCommands commands.CoachCommands,
	equipmentCommands commands.EquipmentCommands,
) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		courtCommands:     courtCommands,
		coachCommands:     coachCommands,
		equipmentCommands: equipmentCommands,
	}
}

// @Summary Create court
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpsertCourtRequest true "Court data"
// @Success 201 {object} response.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /admin/courts [post]
func (h *AdminCatalogHandler) CreateCourt(c *gin.Context) {
	var req reqdto.UpsertCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.courtCommands.Create(c.Request.Context(), commands.CourtParams{
		Name:      req.Name,
		CourtType: req.CourtType,
		BasePrice: req.BasePrice,
		IsActive:  req.Active(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourtInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court data",
			})
		case errors.Is(err, commands.ErrCourtNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A court with this name already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update court
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body request.UpsertCourtRequest true "Court data"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/courts/{id} [put]
func (h *AdminCatalogHandler) UpdateCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	var req reqdto.UpsertCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.courtCommands.Update(c.Request.Context(), id, commands.CourtParams{
		Name:      req.Name,
		CourtType: req.CourtType,
		BasePrice: req.BasePrice,
		IsActive:  req.Active(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, commands.ErrCourtInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court data",
			})
		case errors.Is(err, commands.ErrCourtNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A court with this name already exists",
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

// @Summary Delete court
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /admin/courts/{id} [delete]
func (h *AdminCatalogHandler) DeleteCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	if err := h.courtCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, commands.ErrCourtReferenced):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Court has existing bookings",
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

// @Summary Create coach
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpsertCoachRequest true "Coach data"
// @Success 201 {object} response.CreatedResponse
// @Router /admin/coaches [post]
func (h *AdminCatalogHandler) CreateCoach(c *gin.Context) {
	var req reqdto.UpsertCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.coachCommands.Create(c.Request.Context(), commands.CoachParams{
		Name:           req.Name,
		Price:          req.Price,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCoachInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coach data",
			})
		case errors.Is(err, commands.ErrCoachNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A coach with this name already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update coach
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param request body request.UpsertCoachRequest true "Coach data"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/coaches/{id} [put]
func (h *AdminCatalogHandler) UpdateCoach(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coach ID format",
		})
		return
	}

	var req reqdto.UpsertCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.coachCommands.Update(c.Request.Context(), id, commands.CoachParams{
		Name:           req.Name,
		Price:          req.Price,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCoachNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coach not found",
			})
		case errors.Is(err, commands.ErrCoachInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coach data",
			})
		case errors.Is(err, commands.ErrCoachNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A coach with this name already exists",
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

// @Summary Delete coach
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /admin/coaches/{id} [delete]
func (h *AdminCatalogHandler) DeleteCoach(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coach ID format",
		})
		return
	}

	if err := h.coachCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCoachNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coach not found",
			})
		case errors.Is(err, commands.ErrCoachReferenced):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coach has existing bookings",
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

// @Summary Create equipment
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpsertEquipmentRequest true "Equipment data"
// @Success 201 {object} response.CreatedResponse
// @Router /admin/equipment [post]
func (h *AdminCatalogHandler) CreateEquipment(c *gin.Context) {
	var req reqdto.UpsertEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.equipmentCommands.Create(c.Request.Context(), commands.EquipmentParams{
		Name:           req.Name,
		Price:          req.Price,
		TotalAvailable: req.TotalAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEquipmentInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid equipment data",
			})
		case errors.Is(err, commands.ErrEquipmentNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A equipment with this name already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update equipment
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body request.UpsertEquipmentRequest true "Equipment data"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/equipment/{id} [put]
func (h *AdminCatalogHandler) UpdateEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	var req reqdto.UpsertEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.equipmentCommands.Update(c.Request.Context(), id, commands.EquipmentParams{
		Name:           req.Name,
		Price:          req.Price,
		TotalAvailable: req.TotalAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
		case errors.Is(err, commands.ErrEquipmentInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid equipment data",
			})
		case errors.Is(err, commands.ErrEquipmentNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A equipment with this name already exists",
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

// @Summary Delete equipment
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /admin/equipment/{id} [delete]
func (h *AdminCatalogHandler) DeleteEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment ID format",
		})
		return
	}

	if err := h.equipmentCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
		case errors.Is(err, commands.ErrEquipmentReferenced):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Equipment has existing bookings",
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
