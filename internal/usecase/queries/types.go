package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// UserView represents read-optimized user data for admin listings
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CourtView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CourtType string    `json:"court_type"`
	BasePrice int64     `json:"base_price"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CoachView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Price          int64     `json:"price"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EquipmentView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Price          int64     `json:"price"`
	TotalAvailable int       `json:"total_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PricingRuleView struct {
	RuleType   string    `json:"rule_type"`
	Enabled    bool      `json:"enabled"`
	Multiplier float64   `json:"multiplier"`
	StartTime  string    `json:"start_time,omitempty"`
	EndTime    string    `json:"end_time,omitempty"`
	Discount   float64   `json:"discount"`
	MinItems   int       `json:"min_items"`
	ApplyDays  string    `json:"apply_days,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingEquipmentView struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
}

type BookingView struct {
	ID         uuid.UUID              `json:"id"`
	UserID     uuid.UUID              `json:"user_id"`
	Username   string                 `json:"username"`
	CourtID    uuid.UUID              `json:"court_id"`
	CourtName  string                 `json:"court_name"`
	CoachID    *uuid.UUID             `json:"coach_id,omitempty"`
	CoachName  *string                `json:"coach_name,omitempty"`
	Date       string                 `json:"date"`
	TimeSlot   string                 `json:"time_slot"`
	Hours      int                    `json:"hours"`
	Equipment  []BookingEquipmentView `json:"equipment,omitempty"`
	TotalPrice int64                  `json:"total_price"`
	CreatedAt  time.Time              `json:"created_at"`
}

// CourtAvailabilityView lists, for one court on one date, which slot tokens
// are still free.
type CourtAvailabilityView struct {
	CourtID        uuid.UUID `json:"court_id"`
	CourtName      string    `json:"court_name"`
	AvailableSlots []string  `json:"available_slots"`
}

// EquipmentAvailabilityView carries the per-slot remaining stock of one
// equipment item on one date.
type EquipmentAvailabilityView struct {
	EquipmentID     uuid.UUID      `json:"equipment_id"`
	Name            string         `json:"name"`
	TotalAvailable  int            `json:"total_available"`
	RemainingBySlot map[string]int `json:"remaining_by_slot"`
}

type AvailabilityView struct {
	Date      string                      `json:"date"`
	Courts    []CourtAvailabilityView     `json:"courts"`
	Equipment []EquipmentAvailabilityView `json:"equipment"`
}

// StatsView is the admin dashboard headline numbers.
type StatsView struct {
	TotalUsers    int64 `json:"total_users"`
	TotalCourts   int64 `json:"total_courts"`
	ActiveCourts  int64 `json:"active_courts"`
	TotalCoaches  int64 `json:"total_coaches"`
	TotalBookings int64 `json:"total_bookings"`
	TodayBookings int64 `json:"today_bookings"`
	TotalRevenue  int64 `json:"total_revenue"`
}

type RevenueByDayView struct {
	Date     string `json:"date"`
	Bookings int64  `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

type RevenueByCourtTypeView struct {
	CourtType string `json:"court_type"`
	Bookings  int64  `json:"bookings"`
	Revenue   int64  `json:"revenue"`
}

type RevenueByMonthView struct {
	Month    string `json:"month"`
	Bookings int64  `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

type TopSpenderView struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	Bookings   int64     `json:"bookings"`
	TotalSpent int64     `json:"total_spent"`
}
