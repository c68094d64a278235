package queries

import (
	"context"

	"courtbook/internal/domain/booking"
	"courtbook/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid date")

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, date string) (*AvailabilityView, error)
}

// DayScheduleReadStore loads every booking touching one date, with its
// occupied slots and equipment lines.
type DayScheduleReadStore interface {
	ExistingByDate(ctx context.Context, date booking.Date) ([]booking.Existing, error)
}

type availabilityQueriesImpl struct {
	catalog  CatalogReadStore
	schedule DayScheduleReadStore
}

func NewAvailabilityQueries(catalog CatalogReadStore, schedule DayScheduleReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog:  catalog,
		schedule: schedule,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, date string) (*AvailabilityView, error) {
	day, err := booking.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	courts, err := q.catalog.ListCourts(ctx, false)
	if err != nil {
		return nil, err
	}
	equipment, err := q.catalog.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := q.schedule.ExistingByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Date:      day.String(),
		Courts:    make([]CourtAvailabilityView, 0, len(courts)),
		Equipment: make([]EquipmentAvailabilityView, 0, len(equipment)),
	}

	for _, c := range courts {
		free := make([]string, 0, len(booking.Slots()))
		for _, token := range booking.Slots() {
			slot, slotErr := booking.NewSlot(token)
			if slotErr != nil {
				continue
			}
			if booking.IsCourtAvailable(c.ID, day, slot, existing) {
				free = append(free, token)
			}
		}
		view.Courts = append(view.Courts, CourtAvailabilityView{
			CourtID:        c.ID,
			CourtName:      c.Name,
			AvailableSlots: free,
		})
	}

	for _, e := range equipment {
		remaining := make(map[string]int, len(booking.Slots()))
		for _, token := range booking.Slots() {
			slot, slotErr := booking.NewSlot(token)
			if slotErr != nil {
				continue
			}
			remaining[token] = booking.EquipmentRemaining(e.ID, e.TotalAvailable, day, slot, existing)
		}
		view.Equipment = append(view.Equipment, EquipmentAvailabilityView{
			EquipmentID:     e.ID,
			Name:            e.Name,
			TotalAvailable:  e.TotalAvailable,
			RemainingBySlot: remaining,
		})
	}

	return view, nil
}
