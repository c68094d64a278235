package booking

import (
	"fmt"

	"github.com/google/uuid"
)

// RejectReason enumerates why a booking request was turned down. Callers
// branch on the reason code; rejections are values, not errors.
type RejectReason string

const (
	ReasonCourtNotFound         RejectReason = "court_not_found"
	ReasonCourtInactive         RejectReason = "court_inactive"
	ReasonCourtSlotTaken        RejectReason = "court_slot_taken"
	ReasonCoachNotFound         RejectReason = "coach_not_found"
	ReasonCoachSlotTaken        RejectReason = "coach_slot_taken"
	ReasonEquipmentInsufficient RejectReason = "equipment_insufficient"
	ReasonInvalidTimeSlot       RejectReason = "invalid_time_slot"
	ReasonInvalidDate           RejectReason = "invalid_date"
)

// CourtSpec is the write-side snapshot of a court, taken by the caller
// before the decision (CQRS separation, same as the command snapshots).
type CourtSpec struct {
	ID        uuid.UUID
	Name      string
	Indoor    bool
	BasePrice int64
	IsActive  bool
}

type CoachSpec struct {
	ID    uuid.UUID
	Name  string
	Price int64
}

type EquipmentSpec struct {
	ID             uuid.UUID
	Name           string
	UnitPrice      int64
	TotalAvailable int
}

// EquipmentLine links a booking to an equipment item with a positive quantity.
type EquipmentLine struct {
	EquipmentID uuid.UUID
	Quantity    int
	UnitPrice   int64
}

// Existing is one already-persisted booking relevant to the requested date,
// with the equipment it holds. Hours tells how many contiguous slot tokens
// the booking occupies starting at Slot.
type Existing struct {
	ID        uuid.UUID
	CourtID   uuid.UUID
	CoachID   *uuid.UUID
	Date      Date
	Slot      Slot
	Hours     int
	Equipment []EquipmentLine
}

// coveredSlots never fails for persisted rows; a row whose expansion would
// run off the grid is clamped to the grid end.
func (e Existing) coveredSlots() []Slot {
	hours := e.Hours
	if hours < 1 {
		hours = 1
	}
	for ; hours >= 1; hours-- {
		if covered, ok := e.Slot.Covered(hours); ok {
			return covered
		}
	}
	return nil
}

// Request is an incoming booking request, still unvalidated.
type Request struct {
	CourtID   uuid.UUID
	Date      string // "YYYY-MM-DD"
	Slot      string // "HH:MM" token
	Hours     int
	CoachID   *uuid.UUID
	Equipment map[uuid.UUID]int
}

// Accepted is the priced booking descriptor handed back for persistence.
type Accepted struct {
	CourtID    uuid.UUID
	CoachID    *uuid.UUID
	Date       Date
	Slot       Slot
	Hours      int
	Lines      []EquipmentLine // normalized: known items with quantity > 0
	TotalPrice int64
}

// Rejection carries the reason code plus enough detail for user messaging.
type Rejection struct {
	Reason      RejectReason
	Detail      string
	EquipmentID *uuid.UUID
	Requested   int
	Available   int
}

func (r Rejection) String() string {
	if r.Detail == "" {
		return string(r.Reason)
	}
	return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
}

// Decision is the outcome of validating one request: exactly one of
// Accepted / Rejected is set.
type Decision struct {
	Accepted *Accepted
	Rejected *Rejection
}

func (d Decision) IsAccepted() bool {
	return d.Accepted != nil
}

func accept(a Accepted) Decision {
	return Decision{Accepted: &a}
}

func reject(r Rejection) Decision {
	return Decision{Rejected: &r}
}
