package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CourtID   uuid.UUID         `json:"court_id" binding:"required"`
	Date      string            `json:"date" binding:"required"`
	TimeSlot  string            `json:"time_slot" binding:"required"`
	Hours     int               `json:"hours,omitempty"`
	CoachID   *uuid.UUID        `json:"coach_id,omitempty"`
	Equipment map[uuid.UUID]int `json:"equipment,omitempty"`
}
