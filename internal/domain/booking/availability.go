package booking

import "github.com/google/uuid"

// IsCourtAvailable reports whether no existing booking occupies the court at
// the exact (date, slot). Each existing booking blocks every slot token it
// covers; there is no other overlap reasoning.
func IsCourtAvailable(courtID uuid.UUID, date Date, slot Slot, existing []Existing) bool {
	for _, b := range existing {
		if b.CourtID != courtID || !b.Date.Equal(date) {
			continue
		}
		for _, s := range b.coveredSlots() {
			if s == slot {
				return false
			}
		}
	}
	return true
}

// IsCoachAvailable reports whether no existing booking occupies the coach at
// the exact (date, slot), regardless of court.
func IsCoachAvailable(coachID uuid.UUID, date Date, slot Slot, existing []Existing) bool {
	for _, b := range existing {
		if b.CoachID == nil || *b.CoachID != coachID || !b.Date.Equal(date) {
			continue
		}
		for _, s := range b.coveredSlots() {
			if s == slot {
				return false
			}
		}
	}
	return true
}
