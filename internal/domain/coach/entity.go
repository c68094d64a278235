package coach

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCoachName        = errors.New("coach name cannot be empty")
	ErrCoachNameTooLong      = errors.New("coach name is too long (max 100 characters)")
	ErrInvalidSessionPrice   = errors.New("session price must be positive")
	ErrSpecializationTooLong = errors.New("specialization is too long (max 200 characters)")
)

const (
	MaxCoachNameLength      = 100
	MaxSpecializationLength = 200
)

type Coach struct {
	id             uuid.UUID
	name           string
	price          int64
	specialization string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCoach(name string, price int64, specialization string) (*Coach, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCoachName
	}
	if len(name) > MaxCoachNameLength {
		return nil, ErrCoachNameTooLong
	}
	if price <= 0 {
		return nil, ErrInvalidSessionPrice
	}
	specialization = strings.TrimSpace(specialization)
	if len(specialization) > MaxSpecializationLength {
		return nil, ErrSpecializationTooLong
	}

	return &Coach{
		id:             uuid.New(),
		name:           name,
		price:          price,
		specialization: specialization,
	}, nil
}

func ReconstructCoach(
	id uuid.UUID,
	name string,
	price int64,
	specialization string,
	createdAt, updatedAt time.Time,
) *Coach {
	return &Coach{
		id:             id,
		name:           name,
		price:          price,
		specialization: specialization,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Coach) ID() uuid.UUID          { return c.id }
func (c *Coach) Name() string           { return c.name }
func (c *Coach) Price() int64           { return c.price }
func (c *Coach) Specialization() string { return c.specialization }
func (c *Coach) CreatedAt() time.Time   { return c.createdAt }
func (c *Coach) UpdatedAt() time.Time   { return c.updatedAt }
