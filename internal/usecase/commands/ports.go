package commands

import (
	"context"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/coach"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/equipment"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	CountAll(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) (uuid.UUID, error)
	Update(ctx context.Context, c *court.Court) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type CoachRepository interface {
	Create(ctx context.Context, c *coach.Coach) (uuid.UUID, error)
	Update(ctx context.Context, c *coach.Coach) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*coach.Coach, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *equipment.Equipment) (uuid.UUID, error)
	Update(ctx context.Context, e *equipment.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
}

type PricingRuleRepository interface {
	Upsert(ctx context.Context, rules []pricing.Rule) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// SnapshotReader assembles the validation snapshot for one booking request:
// the requested court and coach, the equipment catalog, every booking on the
// requested date, and the current pricing rules.
type SnapshotReader interface {
	Load(ctx context.Context, courtID uuid.UUID, coachID *uuid.UUID, date booking.Date) (booking.Snapshot, error)
}
