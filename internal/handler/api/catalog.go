package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/booking"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries      queries.CatalogQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries, availabilityQueries queries.AvailabilityQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries:      catalogQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List courts
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CourtView
// @Router /courts [get]
func (h *CatalogHandler) ListCourts(c *gin.Context) {
	views, err := h.catalogQueries.ListCourts(c.Request.Context(), isAdmin(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get court
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {object} queries.CourtView
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CatalogHandler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetCourt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List coaches
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CoachView
// @Router /coaches [get]
func (h *CatalogHandler) ListCoaches(c *gin.Context) {
	views, err := h.catalogQueries.ListCoaches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List equipment
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.EquipmentView
// @Router /equipment [get]
func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	views, err := h.catalogQueries.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List bookable time slots
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /timeslots [get]
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, booking.Slots())
}

// @Summary List active pricing rules
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PricingRuleView
// @Router /pricing-rules [get]
func (h *CatalogHandler) ListPricingRules(c *gin.Context) {
	views, err := h.catalogQueries.ListEnabledPricingRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get day availability
// @Description Free slots per court and remaining equipment stock for one date
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
