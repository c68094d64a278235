package response

import (
	"courtbook/internal/domain/booking"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	Booking *queries.BookingView `json:"booking"`
}

type BookingListResponse struct {
	Bookings   []queries.BookingView `json:"bookings"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

// BookingRejectedResponse explains why a booking request was not accepted.
type BookingRejectedResponse struct {
	Reason      string     `json:"reason"`
	Detail      string     `json:"detail,omitempty"`
	EquipmentID *uuid.UUID `json:"equipment_id,omitempty"`
	Requested   int        `json:"requested,omitempty"`
	Available   int        `json:"available,omitempty"`
}

func FromRejection(r *booking.Rejection) BookingRejectedResponse {
	return BookingRejectedResponse{
		Reason:      string(r.Reason),
		Detail:      r.Detail,
		EquipmentID: r.EquipmentID,
		Requested:   r.Requested,
		Available:   r.Available,
	}
}
