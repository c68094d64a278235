package booking

import (
	"bytes"
	"fmt"
	"sort"

	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
)

// Snapshot is everything the validator may consult, read once by the caller
// before the decision. The validator itself performs no I/O; how fresh the
// snapshot is — and the persistence-level guard against two requests racing
// past the same snapshot — is the caller's concern.
type Snapshot struct {
	Court     *CourtSpec // nil when the requested court does not exist
	Coach     *CoachSpec // nil when no coach requested or coach not found
	Equipment map[uuid.UUID]EquipmentSpec
	Existing  []Existing
	Rules     pricing.RuleSet
}

// Validator runs one booking request through the admission checks and, if
// everything holds, prices it. Pure: same request + snapshot, same decision.
type Validator struct {
	calc *pricing.Calculator
}

func NewValidator(calc *pricing.Calculator) *Validator {
	return &Validator{calc: calc}
}

// Validate walks the request through court, coach and equipment checks,
// short-circuiting to a rejection at the first failed one, then prices the
// booking with the snapshot's rule set.
func (v *Validator) Validate(req Request, snap Snapshot) Decision {
	date, err := NewDate(req.Date)
	if err != nil {
		return reject(Rejection{Reason: ReasonInvalidDate, Detail: req.Date})
	}

	slot, err := NewSlot(req.Slot)
	if err != nil {
		return reject(Rejection{Reason: ReasonInvalidTimeSlot, Detail: req.Slot})
	}

	hours := req.Hours
	if hours < 1 {
		hours = 1
	}
	covered, ok := slot.Covered(hours)
	if !ok {
		return reject(Rejection{
			Reason: ReasonInvalidTimeSlot,
			Detail: fmt.Sprintf("%d hours from %s exceeds the bookable grid", hours, slot),
		})
	}

	if snap.Court == nil || snap.Court.ID != req.CourtID {
		return reject(Rejection{Reason: ReasonCourtNotFound})
	}
	if !snap.Court.IsActive {
		return reject(Rejection{Reason: ReasonCourtInactive, Detail: snap.Court.Name})
	}

	for _, s := range covered {
		if !IsCourtAvailable(req.CourtID, date, s, snap.Existing) {
			return reject(Rejection{
				Reason: ReasonCourtSlotTaken,
				Detail: fmt.Sprintf("%s %s %s", snap.Court.Name, date, s),
			})
		}
	}

	if req.CoachID != nil {
		if snap.Coach == nil || snap.Coach.ID != *req.CoachID {
			return reject(Rejection{Reason: ReasonCoachNotFound})
		}
		for _, s := range covered {
			if !IsCoachAvailable(*req.CoachID, date, s, snap.Existing) {
				return reject(Rejection{
					Reason: ReasonCoachSlotTaken,
					Detail: fmt.Sprintf("%s %s %s", snap.Coach.Name, date, s),
				})
			}
		}
	}

	lines, rejection := v.checkEquipment(req, date, covered, snap)
	if rejection != nil {
		return reject(*rejection)
	}

	total := v.price(req, date, slot, hours, lines, snap)

	return accept(Accepted{
		CourtID:    req.CourtID,
		CoachID:    req.CoachID,
		Date:       date,
		Slot:       slot,
		Hours:      hours,
		Lines:      lines,
		TotalPrice: total,
	})
}

// checkEquipment normalizes the requested quantities into equipment lines
// and verifies stock for every covered slot. Requests for unknown equipment
// ids or non-positive quantities are dropped rather than rejected.
func (v *Validator) checkEquipment(req Request, date Date, covered []Slot, snap Snapshot) ([]EquipmentLine, *Rejection) {
	if len(req.Equipment) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(req.Equipment))
	for id := range req.Equipment {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	var lines []EquipmentLine
	for _, id := range ids {
		quantity := req.Equipment[id]
		if quantity <= 0 {
			continue
		}
		spec, found := snap.Equipment[id]
		if !found {
			continue
		}

		for _, s := range covered {
			remaining := EquipmentRemaining(id, spec.TotalAvailable, date, s, snap.Existing)
			if remaining < quantity {
				eqID := id
				return nil, &Rejection{
					Reason:      ReasonEquipmentInsufficient,
					Detail:      fmt.Sprintf("%s: requested %d, available %d", spec.Name, quantity, remaining),
					EquipmentID: &eqID,
					Requested:   quantity,
					Available:   remaining,
				}
			}
		}

		lines = append(lines, EquipmentLine{
			EquipmentID: id,
			Quantity:    quantity,
			UnitPrice:   spec.UnitPrice,
		})
	}
	return lines, nil
}

func (v *Validator) price(req Request, date Date, slot Slot, hours int, lines []EquipmentLine, snap Snapshot) int64 {
	selections := make([]pricing.EquipmentSelection, len(lines))
	for i, line := range lines {
		selections[i] = pricing.EquipmentSelection{
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}

	var coachPrice *int64
	if req.CoachID != nil && snap.Coach != nil {
		price := snap.Coach.Price
		coachPrice = &price
	}

	return v.calc.Price(pricing.PriceRequest{
		BaseHourlyPrice: snap.Court.BasePrice,
		Indoor:          snap.Court.Indoor,
		Slot:            slot.String(),
		Date:            date.Time(),
		Hours:           hours,
		Equipment:       selections,
		CoachPrice:      coachPrice,
	}, snap.Rules)
}
