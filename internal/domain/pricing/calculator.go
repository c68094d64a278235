package pricing

import (
	"math"
	"time"
)

// EquipmentSelection is one rental line entering the price.
type EquipmentSelection struct {
	UnitPrice int64
	Quantity  int
}

// PriceRequest carries everything the calculator needs, already resolved by
// the caller. The calculator itself reads no shared state.
type PriceRequest struct {
	BaseHourlyPrice int64
	Indoor          bool
	Slot            string // "HH:MM" token of the starting slot
	Date            time.Time
	Hours           int
	Equipment       []EquipmentSelection
	CoachPrice      *int64
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Price computes the total for a prospective booking.
//
// The court-hours base runs through the multiplicative rules in fixed order
// (indoor, peak_hours, weekend, multiple_hours); the bundle discount applies
// to the equipment subtotal only; the coach fee is added last, undiscounted.
// The result is rounded to the nearest currency unit and never negative.
func (c *Calculator) Price(req PriceRequest, rules RuleSet) int64 {
	hours := req.Hours
	if hours < 1 {
		hours = 1
	}

	base := float64(req.BaseHourlyPrice) * float64(hours)

	if rules.indoor != nil && req.Indoor {
		base *= rules.indoor.multiplier
	}

	if rules.peakHours != nil && slotInWindow(req.Slot, rules.peakHours.startTime, rules.peakHours.endTime) &&
		rules.peakHours.applyDays.Applies(req.Date) {
		base *= rules.peakHours.multiplier
	}

	if rules.weekend != nil && IsWeekend(req.Date) {
		base *= rules.weekend.multiplier
	}

	if rules.multipleHours != nil && hours > 1 {
		factor := 1 - rules.multipleHours.discount*float64(hours-1)
		if factor < 0 {
			factor = 0
		}
		base *= factor
	}

	equipmentSubtotal := 0.0
	totalItems := 0
	for _, sel := range req.Equipment {
		if sel.Quantity <= 0 {
			continue
		}
		equipmentSubtotal += float64(sel.UnitPrice) * float64(sel.Quantity)
		totalItems += sel.Quantity
	}

	if rules.bundle != nil && totalItems >= rules.bundle.minItems {
		equipmentSubtotal *= 1 - rules.bundle.discount
	}

	total := base + equipmentSubtotal
	if req.CoachPrice != nil {
		total += float64(*req.CoachPrice)
	}

	rounded := int64(math.Round(total))
	if rounded < 0 {
		rounded = 0
	}
	return rounded
}

// slotInWindow reports whether the slot token falls in [start, end).
// Zero-padded 24h tokens order correctly under string comparison.
func slotInWindow(slot, start, end string) bool {
	return slot >= start && slot < end
}
