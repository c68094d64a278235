//go:build unit || e2e

package builder

import (
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID     uuid.UUID
	Username   string
	CourtID    uuid.UUID
	CourtName  string
	CoachID    *uuid.UUID
	CoachName  *string
	Date       string
	TimeSlot   string
	Hours      int
	Equipment  map[uuid.UUID]int
	TotalPrice int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:     uuid.New(),
		Username:   "testuser",
		CourtID:    uuid.New(),
		CourtName:  "Court 1",
		Date:       "2026-09-10",
		TimeSlot:   "10:00",
		Hours:      1,
		Equipment:  map[uuid.UUID]int{},
		TotalPrice: 300,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CourtID:   b.CourtID,
		Date:      b.Date,
		TimeSlot:  b.TimeSlot,
		Hours:     b.Hours,
		CoachID:   b.CoachID,
		Equipment: b.Equipment,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.New(),
		UserID:     b.UserID,
		Username:   b.Username,
		CourtID:    b.CourtID,
		CourtName:  b.CourtName,
		CoachID:    b.CoachID,
		CoachName:  b.CoachName,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		Hours:      b.Hours,
		TotalPrice: b.TotalPrice,
		CreatedAt:  time.Now(),
	}
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCourt(courtID uuid.UUID) *BookingBuilder {
	b.CourtID = courtID
	return b
}

func (b *BookingBuilder) WithCoach(coachID uuid.UUID, name string) *BookingBuilder {
	b.CoachID = &coachID
	b.CoachName = &name
	return b
}

func (b *BookingBuilder) WithSlot(date, slot string, hours int) *BookingBuilder {
	b.Date = date
	b.TimeSlot = slot
	b.Hours = hours
	return b
}

func (b *BookingBuilder) WithEquipment(equipmentID uuid.UUID, quantity int) *BookingBuilder {
	b.Equipment[equipmentID] = quantity
	return b
}
