//go:build unit

package booking_test

import (
	"testing"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRules() pricing.RuleSet {
	return pricing.NewRuleSet([]pricing.Rule{
		{Type: pricing.RuleTypePeakHours, Enabled: true, Multiplier: 1.5, StartTime: "18:00", EndTime: "21:00", ApplyDays: "1,2,3,4,5"},
		{Type: pricing.RuleTypeWeekend, Enabled: true, Multiplier: 1.3},
		{Type: pricing.RuleTypeIndoor, Enabled: true, Multiplier: 1.2},
		{Type: pricing.RuleTypeMultipleHours, Enabled: true, Discount: 0.1},
		{Type: pricing.RuleTypeBundle, Enabled: true, Discount: 0.15, MinItems: 3},
	})
}

type snapshotOption func(*booking.Snapshot)

func newSnapshot(court booking.CourtSpec, opts ...snapshotOption) booking.Snapshot {
	snap := booking.Snapshot{
		Court:     &court,
		Equipment: map[uuid.UUID]booking.EquipmentSpec{},
		Rules:     defaultRules(),
	}
	for _, opt := range opts {
		opt(&snap)
	}
	return snap
}

func withCoach(coach booking.CoachSpec) snapshotOption {
	return func(s *booking.Snapshot) { s.Coach = &coach }
}

func withEquipment(specs ...booking.EquipmentSpec) snapshotOption {
	return func(s *booking.Snapshot) {
		for _, spec := range specs {
			s.Equipment[spec.ID] = spec
		}
	}
}

func withExisting(existing ...booking.Existing) snapshotOption {
	return func(s *booking.Snapshot) { s.Existing = append(s.Existing, existing...) }
}

func TestValidator_Validate(t *testing.T) {
	validator := booking.NewValidator(pricing.NewCalculator())

	court := booking.CourtSpec{
		ID:        uuid.New(),
		Name:      "Court 1",
		Indoor:    false,
		BasePrice: 300,
		IsActive:  true,
	}

	request := func() booking.Request {
		return booking.Request{
			CourtID: court.ID,
			Date:    "2025-06-11",
			Slot:    "10:00",
			Hours:   1,
		}
	}

	t.Run("日付が不正なら invalid_date", func(t *testing.T) {
		req := request()
		req.Date = "2025/06/11"

		decision := validator.Validate(req, newSnapshot(court))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonInvalidDate, decision.Rejected.Reason)
	})

	t.Run("スロットが不正なら invalid_time_slot", func(t *testing.T) {
		req := request()
		req.Slot = "10:30"

		decision := validator.Validate(req, newSnapshot(court))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonInvalidTimeSlot, decision.Rejected.Reason)
	})

	t.Run("グリッド末尾を超える複数時間予約は invalid_time_slot", func(t *testing.T) {
		req := request()
		req.Slot = "20:00"
		req.Hours = 3

		decision := validator.Validate(req, newSnapshot(court))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonInvalidTimeSlot, decision.Rejected.Reason)
	})

	t.Run("コートが見つからなければ court_not_found", func(t *testing.T) {
		decision := validator.Validate(request(), booking.Snapshot{Rules: defaultRules()})
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonCourtNotFound, decision.Rejected.Reason)
	})

	t.Run("停止中のコートは court_inactive", func(t *testing.T) {
		inactive := court
		inactive.IsActive = false

		decision := validator.Validate(request(), newSnapshot(inactive))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonCourtInactive, decision.Rejected.Reason)
	})

	t.Run("同一スロットの二重予約は court_slot_taken", func(t *testing.T) {
		first := validator.Validate(request(), newSnapshot(court))
		require.True(t, first.IsAccepted())

		taken := booking.Existing{
			ID:      uuid.New(),
			CourtID: first.Accepted.CourtID,
			Date:    first.Accepted.Date,
			Slot:    first.Accepted.Slot,
			Hours:   first.Accepted.Hours,
		}
		second := validator.Validate(request(), newSnapshot(court, withExisting(taken)))
		require.False(t, second.IsAccepted())
		assert.Equal(t, booking.ReasonCourtSlotTaken, second.Rejected.Reason)

		adjacent := request()
		adjacent.Slot = "11:00"
		third := validator.Validate(adjacent, newSnapshot(court, withExisting(taken)))
		assert.True(t, third.IsAccepted())
	})

	t.Run("複数時間予約は途中のスロット衝突でも拒否", func(t *testing.T) {
		taken := booking.Existing{
			ID:      uuid.New(),
			CourtID: court.ID,
			Date:    mustDate(t, "2025-06-11"),
			Slot:    mustSlot(t, "11:00"),
			Hours:   1,
		}
		req := request()
		req.Hours = 2

		decision := validator.Validate(req, newSnapshot(court, withExisting(taken)))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonCourtSlotTaken, decision.Rejected.Reason)
	})

	t.Run("コーチが見つからなければ coach_not_found", func(t *testing.T) {
		coachID := uuid.New()
		req := request()
		req.CoachID = &coachID

		decision := validator.Validate(req, newSnapshot(court))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonCoachNotFound, decision.Rejected.Reason)
	})

	t.Run("コーチは別コートの予約でも塞がる", func(t *testing.T) {
		coach := booking.CoachSpec{ID: uuid.New(), Name: "田中", Price: 500}
		busy := booking.Existing{
			ID:      uuid.New(),
			CourtID: uuid.New(),
			CoachID: &coach.ID,
			Date:    mustDate(t, "2025-06-11"),
			Slot:    mustSlot(t, "10:00"),
			Hours:   1,
		}
		req := request()
		req.CoachID = &coach.ID

		decision := validator.Validate(req, newSnapshot(court, withCoach(coach), withExisting(busy)))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonCoachSlotTaken, decision.Rejected.Reason)
	})

	t.Run("機材の在庫不足は equipment_insufficient", func(t *testing.T) {
		racket := booking.EquipmentSpec{ID: uuid.New(), Name: "ラケット", UnitPrice: 50, TotalAvailable: 10}
		booked := booking.Existing{
			ID:      uuid.New(),
			CourtID: uuid.New(),
			Date:    mustDate(t, "2025-06-11"),
			Slot:    mustSlot(t, "10:00"),
			Hours:   1,
			Equipment: []booking.EquipmentLine{
				{EquipmentID: racket.ID, Quantity: 7},
			},
		}
		req := request()
		req.Equipment = map[uuid.UUID]int{racket.ID: 4}

		decision := validator.Validate(req, newSnapshot(court, withEquipment(racket), withExisting(booked)))
		require.False(t, decision.IsAccepted())
		assert.Equal(t, booking.ReasonEquipmentInsufficient, decision.Rejected.Reason)
		require.NotNil(t, decision.Rejected.EquipmentID)
		assert.Equal(t, racket.ID, *decision.Rejected.EquipmentID)
		assert.Equal(t, 4, decision.Rejected.Requested)
		assert.Equal(t, 3, decision.Rejected.Available)

		req.Equipment[racket.ID] = 3
		decision = validator.Validate(req, newSnapshot(court, withEquipment(racket), withExisting(booked)))
		assert.True(t, decision.IsAccepted())
	})

	t.Run("未知の機材IDと0以下の数量は黙って落とす", func(t *testing.T) {
		racket := booking.EquipmentSpec{ID: uuid.New(), Name: "ラケット", UnitPrice: 50, TotalAvailable: 10}
		req := request()
		req.Equipment = map[uuid.UUID]int{
			uuid.New(): 2,
			racket.ID:  0,
		}

		decision := validator.Validate(req, newSnapshot(court, withEquipment(racket)))
		require.True(t, decision.IsAccepted())
		assert.Empty(t, decision.Accepted.Lines)
	})

	t.Run("受理時は正規化済みの明細と価格を返す", func(t *testing.T) {
		racket := booking.EquipmentSpec{ID: uuid.New(), Name: "ラケット", UnitPrice: 50, TotalAvailable: 10}
		shoes := booking.EquipmentSpec{ID: uuid.New(), Name: "シューズ", UnitPrice: 100, TotalAvailable: 5}
		coach := booking.CoachSpec{ID: uuid.New(), Name: "田中", Price: 500}

		req := request()
		req.Hours = 2
		req.CoachID = &coach.ID
		req.Equipment = map[uuid.UUID]int{racket.ID: 2, shoes.ID: 1}

		decision := validator.Validate(req, newSnapshot(court, withCoach(coach), withEquipment(racket, shoes)))
		require.True(t, decision.IsAccepted())

		accepted := decision.Accepted
		assert.Equal(t, court.ID, accepted.CourtID)
		require.NotNil(t, accepted.CoachID)
		assert.Equal(t, coach.ID, *accepted.CoachID)
		assert.Equal(t, "2025-06-11", accepted.Date.String())
		assert.Equal(t, "10:00", accepted.Slot.String())
		assert.Equal(t, 2, accepted.Hours)
		require.Len(t, accepted.Lines, 2)
		for _, line := range accepted.Lines {
			assert.Positive(t, line.Quantity)
			assert.Positive(t, line.UnitPrice)
		}

		// 600 court-hours with the 2-hour discount, 200 of equipment with the
		// 3-item bundle discount, coach fee undiscounted.
		assert.Equal(t, int64(540+170+500), accepted.TotalPrice)
	})

	t.Run("時間数0以下は1時間に丸める", func(t *testing.T) {
		req := request()
		req.Hours = 0

		decision := validator.Validate(req, newSnapshot(court))
		require.True(t, decision.IsAccepted())
		assert.Equal(t, 1, decision.Accepted.Hours)
		assert.Equal(t, int64(300), decision.Accepted.TotalPrice)
	})
}
