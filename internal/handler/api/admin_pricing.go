package api

import (
	"errors"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminPricingHandler struct {
	pricingCommands commands.PricingCommands
	catalogQueries  queries.CatalogQueries
}

func NewAdminPricingHandler(pricingCommands commands.PricingCommands, catalogQueries queries.CatalogQueries) *AdminPricingHandler {
	return &AdminPricingHandler{
		pricingCommands: pricingCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List pricing rules
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PricingRuleView
// @Router /admin/pricing-rules [get]
func (h *AdminPricingHandler) ListPricingRules(c *gin.Context) {
	views, err := h.catalogQueries.ListPricingRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Update pricing rules
// @Description Replaces the configuration of the submitted rule types
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body request.UpdatePricingRulesRequest true "Pricing rules"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/pricing-rules [put]
func (h *AdminPricingHandler) UpdatePricingRules(c *gin.Context) {
	var req reqdto.UpdatePricingRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := make([]commands.PricingRuleParams, 0, len(req.Rules))
	for _, r := range req.Rules {
		params = append(params, commands.PricingRuleParams{
			RuleType:   r.RuleType,
			Enabled:    r.Enabled,
			Multiplier: r.Multiplier,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Discount:   r.Discount,
			MinItems:   r.MinItems,
			ApplyDays:  r.ApplyDays,
		})
	}

	if err := h.pricingCommands.UpdateRules(c.Request.Context(), params); err != nil {
		if errors.Is(err, commands.ErrPricingRuleInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pricing rule",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
