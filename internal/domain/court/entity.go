package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrCourtNameTooLong = errors.New("court name is too long (max 100 characters)")
	ErrInvalidCourtType = errors.New("court type must be indoor or outdoor")
	ErrInvalidBasePrice = errors.New("base price must be positive")
)

const MaxCourtNameLength = 100

type Type string

const (
	TypeIndoor  Type = "indoor"
	TypeOutdoor Type = "outdoor"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return t == TypeIndoor || t == TypeOutdoor
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidCourtType
	}
	return t, nil
}

type Court struct {
	id        uuid.UUID
	name      string
	courtType Type
	basePrice int64
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(name string, courtType Type, basePrice int64, isActive bool) (*Court, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !courtType.IsValid() {
		return nil, ErrInvalidCourtType
	}
	if basePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}

	return &Court{
		id:        uuid.New(),
		name:      name,
		courtType: courtType,
		basePrice: basePrice,
		isActive:  isActive,
	}, nil
}

func ReconstructCourt(
	id uuid.UUID,
	name string,
	courtType Type,
	basePrice int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:        id,
		name:      name,
		courtType: courtType,
		basePrice: basePrice,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return ErrCourtNameTooLong
	}
	return nil
}

func (c *Court) IsIndoor() bool {
	return c.courtType == TypeIndoor
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) CourtType() Type      { return c.courtType }
func (c *Court) BasePrice() int64     { return c.basePrice }
func (c *Court) IsActive() bool       { return c.isActive }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
