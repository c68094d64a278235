package request

type UpsertCourtRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	CourtType string `json:"court_type" binding:"required,oneof=indoor outdoor"`
	BasePrice int64  `json:"base_price" binding:"required,gt=0"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

func (r UpsertCourtRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

type UpsertCoachRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Price          int64  `json:"price" binding:"required,gt=0"`
	Specialization string `json:"specialization" binding:"max=200"`
}

type UpsertEquipmentRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Price          int64  `json:"price" binding:"required,gt=0"`
	TotalAvailable int    `json:"total_available" binding:"gte=0"`
}

type PricingRuleRequest struct {
	RuleType   string  `json:"rule_type" binding:"required"`
	Enabled    bool    `json:"enabled"`
	Multiplier float64 `json:"multiplier,omitempty"`
	StartTime  string  `json:"start_time,omitempty"`
	EndTime    string  `json:"end_time,omitempty"`
	Discount   float64 `json:"discount,omitempty"`
	MinItems   int     `json:"min_items,omitempty"`
	ApplyDays  string  `json:"apply_days,omitempty"`
}

type UpdatePricingRulesRequest struct {
	Rules []PricingRuleRequest `json:"rules" binding:"required,min=1,dive"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member admin"`
}
