//go:build unit

package booking_test

import (
	"testing"

	"courtbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.NewDate(s)
	require.NoError(t, err)
	return d
}

func mustSlot(t *testing.T, s string) booking.Slot {
	t.Helper()
	slot, err := booking.NewSlot(s)
	require.NoError(t, err)
	return slot
}

func TestIsCourtAvailable(t *testing.T) {
	courtID := uuid.New()
	otherCourt := uuid.New()
	date := "2025-06-14"

	existing := func(t *testing.T, slot string, hours int) []booking.Existing {
		t.Helper()
		return []booking.Existing{{
			ID:      uuid.New(),
			CourtID: courtID,
			Date:    mustDate(t, date),
			Slot:    mustSlot(t, slot),
			Hours:   hours,
		}}
	}

	t.Run("同一コート・同一日・同一スロットは不可", func(t *testing.T) {
		assert.False(t, booking.IsCourtAvailable(courtID, mustDate(t, date), mustSlot(t, "14:00"), existing(t, "14:00", 1)))
	})

	t.Run("隣のスロットは可", func(t *testing.T) {
		assert.True(t, booking.IsCourtAvailable(courtID, mustDate(t, date), mustSlot(t, "15:00"), existing(t, "14:00", 1)))
	})

	t.Run("別コートなら可", func(t *testing.T) {
		assert.True(t, booking.IsCourtAvailable(otherCourt, mustDate(t, date), mustSlot(t, "14:00"), existing(t, "14:00", 1)))
	})

	t.Run("別日なら可", func(t *testing.T) {
		assert.True(t, booking.IsCourtAvailable(courtID, mustDate(t, "2025-06-15"), mustSlot(t, "14:00"), existing(t, "14:00", 1)))
	})

	t.Run("複数時間予約は全スロットを塞ぐ", func(t *testing.T) {
		two := existing(t, "14:00", 2)
		assert.False(t, booking.IsCourtAvailable(courtID, mustDate(t, date), mustSlot(t, "14:00"), two))
		assert.False(t, booking.IsCourtAvailable(courtID, mustDate(t, date), mustSlot(t, "15:00"), two))
		assert.True(t, booking.IsCourtAvailable(courtID, mustDate(t, date), mustSlot(t, "16:00"), two))
	})
}

func TestIsCoachAvailable(t *testing.T) {
	coachID := uuid.New()
	date := "2025-06-14"

	t.Run("コーチはコートに関係なく塞がる", func(t *testing.T) {
		id := coachID
		existing := []booking.Existing{{
			ID:      uuid.New(),
			CourtID: uuid.New(),
			CoachID: &id,
			Date:    mustDate(t, date),
			Slot:    mustSlot(t, "14:00"),
			Hours:   1,
		}}

		assert.False(t, booking.IsCoachAvailable(coachID, mustDate(t, date), mustSlot(t, "14:00"), existing))
		assert.True(t, booking.IsCoachAvailable(coachID, mustDate(t, date), mustSlot(t, "15:00"), existing))
		assert.True(t, booking.IsCoachAvailable(uuid.New(), mustDate(t, date), mustSlot(t, "14:00"), existing))
	})

	t.Run("コーチ無し予約は影響しない", func(t *testing.T) {
		existing := []booking.Existing{{
			ID:      uuid.New(),
			CourtID: uuid.New(),
			Date:    mustDate(t, date),
			Slot:    mustSlot(t, "14:00"),
			Hours:   1,
		}}

		assert.True(t, booking.IsCoachAvailable(coachID, mustDate(t, date), mustSlot(t, "14:00"), existing))
	})
}

func TestEquipmentRemaining(t *testing.T) {
	equipmentID := uuid.New()
	date := "2025-06-14"

	withBooked := func(t *testing.T, qty int) []booking.Existing {
		t.Helper()
		return []booking.Existing{{
			ID:      uuid.New(),
			CourtID: uuid.New(),
			Date:    mustDate(t, date),
			Slot:    mustSlot(t, "14:00"),
			Hours:   1,
			Equipment: []booking.EquipmentLine{
				{EquipmentID: equipmentID, Quantity: qty},
			},
		}}
	}

	t.Run("既存予約分を差し引く", func(t *testing.T) {
		remaining := booking.EquipmentRemaining(equipmentID, 10, mustDate(t, date), mustSlot(t, "14:00"), withBooked(t, 7))
		assert.Equal(t, 3, remaining)
	})

	t.Run("別スロットの予約は差し引かない", func(t *testing.T) {
		remaining := booking.EquipmentRemaining(equipmentID, 10, mustDate(t, date), mustSlot(t, "15:00"), withBooked(t, 7))
		assert.Equal(t, 10, remaining)
	})

	t.Run("売り越し状態でも負にならない", func(t *testing.T) {
		remaining := booking.EquipmentRemaining(equipmentID, 5, mustDate(t, date), mustSlot(t, "14:00"), withBooked(t, 9))
		assert.Equal(t, 0, remaining)
	})

	t.Run("別の機材は数えない", func(t *testing.T) {
		remaining := booking.EquipmentRemaining(uuid.New(), 10, mustDate(t, date), mustSlot(t, "14:00"), withBooked(t, 7))
		assert.Equal(t, 10, remaining)
	})
}

func TestSlotCovered(t *testing.T) {
	t.Run("連続スロット展開", func(t *testing.T) {
		slot := mustSlot(t, "14:00")
		covered, ok := slot.Covered(3)
		require.True(t, ok)
		require.Len(t, covered, 3)
		assert.Equal(t, "14:00", covered[0].String())
		assert.Equal(t, "15:00", covered[1].String())
		assert.Equal(t, "16:00", covered[2].String())
	})

	t.Run("グリッド末尾を超える展開は不可", func(t *testing.T) {
		slot := mustSlot(t, "21:00")
		_, ok := slot.Covered(2)
		assert.False(t, ok)

		covered, ok := slot.Covered(1)
		require.True(t, ok)
		assert.Len(t, covered, 1)
	})

	t.Run("不正トークンは拒否", func(t *testing.T) {
		for _, s := range []string{"", "6:00", "06:30", "22:00", "05:00"} {
			_, err := booking.NewSlot(s)
			assert.ErrorIs(t, err, booking.ErrInvalidSlot, s)
		}
	})
}
