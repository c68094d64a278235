package pricing

import "time"

const (
	timeTokenLayout = "15:04"

	// Fallback threshold when a bundle rule row carries no min_items.
	DefaultBundleMinItems = 3
)

// Rule is one pricing rule row as stored by the admin. Which parameters are
// meaningful depends on the type; the rest are ignored.
type Rule struct {
	Type       RuleType
	Enabled    bool
	Multiplier float64
	StartTime  string // "HH:MM", peak_hours only
	EndTime    string // "HH:MM", peak_hours only
	Discount   float64
	MinItems   int
	ApplyDays  string // comma-separated ISO weekdays, peak_hours only
}

type peakHoursRule struct {
	multiplier float64
	startTime  string
	endTime    string
	applyDays  WeekdaySet
}

type multiplierRule struct {
	multiplier float64
}

type hoursDiscountRule struct {
	discount float64
}

type bundleRule struct {
	discount float64
	minItems int
}

// RuleSet is an immutable snapshot of the enabled pricing rules, normalized
// to at most one rule per type. Malformed rule rows are dropped rather than
// reported: a rule the calculator cannot trust behaves as if it were absent.
type RuleSet struct {
	peakHours     *peakHoursRule
	weekend       *multiplierRule
	indoor        *multiplierRule
	multipleHours *hoursDiscountRule
	bundle        *bundleRule
}

// NewRuleSet builds a snapshot from raw rule rows. When several rows share a
// type the first valid one wins, matching the one-row-per-type invariant the
// admin layer maintains.
func NewRuleSet(rules []Rule) RuleSet {
	var rs RuleSet
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		switch r.Type {
		case RuleTypePeakHours:
			if rs.peakHours != nil {
				continue
			}
			if r.Multiplier <= 0 || !validTimeToken(r.StartTime) || !validTimeToken(r.EndTime) || r.StartTime >= r.EndTime {
				continue
			}
			days, ok := ParseWeekdaySet(r.ApplyDays)
			if !ok {
				continue
			}
			rs.peakHours = &peakHoursRule{
				multiplier: r.Multiplier,
				startTime:  r.StartTime,
				endTime:    r.EndTime,
				applyDays:  days,
			}
		case RuleTypeWeekend:
			if rs.weekend != nil || r.Multiplier <= 0 {
				continue
			}
			rs.weekend = &multiplierRule{multiplier: r.Multiplier}
		case RuleTypeIndoor:
			if rs.indoor != nil || r.Multiplier <= 0 {
				continue
			}
			rs.indoor = &multiplierRule{multiplier: r.Multiplier}
		case RuleTypeMultipleHours:
			if rs.multipleHours != nil || r.Discount < 0 || r.Discount > 1 {
				continue
			}
			rs.multipleHours = &hoursDiscountRule{discount: r.Discount}
		case RuleTypeBundle:
			if rs.bundle != nil || r.Discount < 0 || r.Discount > 1 {
				continue
			}
			minItems := r.MinItems
			if minItems < 1 {
				minItems = DefaultBundleMinItems
			}
			rs.bundle = &bundleRule{discount: r.Discount, minItems: minItems}
		}
	}
	return rs
}

func validTimeToken(s string) bool {
	_, err := time.Parse(timeTokenLayout, s)
	return err == nil
}
