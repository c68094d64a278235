package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves admin-facing statistics and booking listings.
type ReportHandler struct {
	reportQueries  queries.ReportQueries
	bookingQueries queries.BookingQueries
}

func NewReportHandler(reportQueries queries.ReportQueries, bookingQueries queries.BookingQueries) *ReportHandler {
	return &ReportHandler{
		reportQueries:  reportQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary Facility statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.StatsView
// @Router /admin/stats [get]
func (h *ReportHandler) GetStats(c *gin.Context) {
	view, err := h.reportQueries.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Revenue by day
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} queries.RevenueByDayView
// @Failure 400 {object} map[string]string
// @Router /admin/reports/revenue [get]
func (h *ReportHandler) GetRevenueByDay(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "from and to query parameters are required",
		})
		return
	}

	views, err := h.reportQueries.GetRevenueByDay(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Revenue by court type
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} queries.RevenueByCourtTypeView
// @Failure 400 {object} map[string]string
// @Router /admin/reports/revenue-by-court-type [get]
func (h *ReportHandler) GetRevenueByCourtType(c *gin.Context) {
	views, err := h.reportQueries.GetRevenueByCourtType(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Revenue by month
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RevenueByMonthView
// @Router /admin/reports/revenue-by-month [get]
func (h *ReportHandler) GetRevenueByMonth(c *gin.Context) {
	views, err := h.reportQueries.GetRevenueByMonth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Top spending members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of members (default 10, max 100)"
// @Success 200 {array} queries.TopSpenderView
// @Failure 400 {object} map[string]string
// @Router /admin/reports/top-spenders [get]
func (h *ReportHandler) GetTopSpenders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	views, err := h.reportQueries.GetTopSpenders(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List all bookings
// @Description Cursor-paginated booking listing across all members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} response.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /admin/bookings [get]
func (h *ReportHandler) ListAllBookings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	views, next, err := h.bookingQueries.ListAllBookings(c.Request.Context(), c.Query("cursor"), limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{
		Bookings:   views,
		NextCursor: next,
	})
}
