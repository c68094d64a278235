package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a persisted reservation. It is only ever built from an Accepted
// decision (or reconstructed from storage); there is no way to hand-assemble
// an unvalidated one.
type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	courtID    uuid.UUID
	coachID    *uuid.UUID
	date       Date
	slot       Slot
	hours      int
	lines      []EquipmentLine
	totalPrice int64
	createdAt  time.Time
}

func NewBooking(accepted Accepted, userID uuid.UUID) *Booking {
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		courtID:    accepted.CourtID,
		coachID:    accepted.CoachID,
		date:       accepted.Date,
		slot:       accepted.Slot,
		hours:      accepted.Hours,
		lines:      accepted.Lines,
		totalPrice: accepted.TotalPrice,
	}
}

func ReconstructBooking(
	id, userID, courtID uuid.UUID,
	coachID *uuid.UUID,
	date Date,
	slot Slot,
	hours int,
	lines []EquipmentLine,
	totalPrice int64,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		courtID:    courtID,
		coachID:    coachID,
		date:       date,
		slot:       slot,
		hours:      hours,
		lines:      lines,
		totalPrice: totalPrice,
		createdAt:  createdAt,
	}
}

// CoveredSlots lists every slot token the booking occupies.
func (b *Booking) CoveredSlots() []Slot {
	covered, ok := b.slot.Covered(b.hours)
	if !ok {
		return []Slot{b.slot}
	}
	return covered
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) CourtID() uuid.UUID     { return b.courtID }
func (b *Booking) CoachID() *uuid.UUID    { return b.coachID }
func (b *Booking) Date() Date             { return b.date }
func (b *Booking) Slot() Slot             { return b.slot }
func (b *Booking) Hours() int             { return b.hours }
func (b *Booking) Lines() []EquipmentLine { return b.lines }
func (b *Booking) TotalPrice() int64      { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
