package booking

import "github.com/google/uuid"

// EquipmentRemaining computes how many units of an equipment item are still
// free at the exact (date, slot): total stock minus everything held by
// bookings covering that slot. Clamped at zero so an oversold state from a
// prior race never reports negative stock.
func EquipmentRemaining(equipmentID uuid.UUID, totalAvailable int, date Date, slot Slot, existing []Existing) int {
	booked := 0
	for _, b := range existing {
		if !b.Date.Equal(date) {
			continue
		}
		covers := false
		for _, s := range b.coveredSlots() {
			if s == slot {
				covers = true
				break
			}
		}
		if !covers {
			continue
		}
		for _, line := range b.Equipment {
			if line.EquipmentID == equipmentID {
				booked += line.Quantity
			}
		}
	}

	remaining := totalAvailable - booked
	if remaining < 0 {
		return 0
	}
	return remaining
}
