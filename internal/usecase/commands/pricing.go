package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/pkg/errs"
)

var ErrPricingRuleInvalid = errs.New("invalid pricing rule")

type PricingRuleParams struct {
	RuleType   string
	Enabled    bool
	Multiplier float64
	StartTime  string
	EndTime    string
	Discount   float64
	MinItems   int
	ApplyDays  string
}

type PricingCommands interface {
	UpdateRules(ctx context.Context, params []PricingRuleParams) error
}

type pricingCommandsImpl struct {
	repo PricingRuleRepository
}

func NewPricingCommands(repo PricingRuleRepository) PricingCommands {
	return &pricingCommandsImpl{repo: repo}
}

// UpdateRules rejects rule rows the pricing engine would silently drop, so
// a misconfigured rule surfaces here instead of as a mute price change.
func (c *pricingCommandsImpl) UpdateRules(ctx context.Context, params []PricingRuleParams) error {
	rules := make([]pricing.Rule, 0, len(params))
	for _, p := range params {
		rule := pricing.Rule{
			Type:       pricing.RuleType(p.RuleType),
			Enabled:    p.Enabled,
			Multiplier: p.Multiplier,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
			Discount:   p.Discount,
			MinItems:   p.MinItems,
			ApplyDays:  p.ApplyDays,
		}
		if err := validateRule(rule); err != nil {
			return err
		}
		rules = append(rules, rule)
	}

	return c.repo.Upsert(ctx, rules)
}

func validateRule(rule pricing.Rule) error {
	known := false
	for _, t := range pricing.RuleTypes {
		if rule.Type == t {
			known = true
			break
		}
	}
	if !known {
		return errs.Mark(errs.New("unknown rule type: "+string(rule.Type)), ErrPricingRuleInvalid)
	}

	if !rule.Enabled {
		return nil
	}

	switch rule.Type {
	case pricing.RuleTypePeakHours:
		if rule.Multiplier <= 0 {
			return errs.Mark(errs.New("multiplier must be positive"), ErrPricingRuleInvalid)
		}
		if _, err := time.Parse("15:04", rule.StartTime); err != nil {
			return errs.Mark(errs.New("invalid start_time"), ErrPricingRuleInvalid)
		}
		if _, err := time.Parse("15:04", rule.EndTime); err != nil {
			return errs.Mark(errs.New("invalid end_time"), ErrPricingRuleInvalid)
		}
		if rule.StartTime >= rule.EndTime {
			return errs.Mark(errs.New("start_time must precede end_time"), ErrPricingRuleInvalid)
		}
		if rule.ApplyDays != "" {
			if _, ok := pricing.ParseWeekdaySet(rule.ApplyDays); !ok {
				return errs.Mark(errs.New("invalid apply_days"), ErrPricingRuleInvalid)
			}
		}
	case pricing.RuleTypeWeekend, pricing.RuleTypeIndoor:
		if rule.Multiplier <= 0 {
			return errs.Mark(errs.New("multiplier must be positive"), ErrPricingRuleInvalid)
		}
	case pricing.RuleTypeMultipleHours, pricing.RuleTypeBundle:
		if rule.Discount < 0 || rule.Discount > 1 {
			return errs.Mark(errs.New("discount must be within [0, 1]"), ErrPricingRuleInvalid)
		}
	}

	return nil
}
