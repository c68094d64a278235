package equipment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEquipmentName   = errors.New("equipment name cannot be empty")
	ErrEquipmentNameTooLong = errors.New("equipment name is too long (max 100 characters)")
	ErrInvalidUnitPrice     = errors.New("unit price must be positive")
	ErrNegativeStock        = errors.New("total available count cannot be negative")
)

const MaxEquipmentNameLength = 100

type Equipment struct {
	id             uuid.UUID
	name           string
	price          int64
	totalAvailable int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewEquipment(name string, price int64, totalAvailable int) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyEquipmentName
	}
	if len(name) > MaxEquipmentNameLength {
		return nil, ErrEquipmentNameTooLong
	}
	if price <= 0 {
		return nil, ErrInvalidUnitPrice
	}
	if totalAvailable < 0 {
		return nil, ErrNegativeStock
	}

	return &Equipment{
		id:             uuid.New(),
		name:           name,
		price:          price,
		totalAvailable: totalAvailable,
	}, nil
}

func ReconstructEquipment(
	id uuid.UUID,
	name string,
	price int64,
	totalAvailable int,
	createdAt, updatedAt time.Time,
) *Equipment {
	return &Equipment{
		id:             id,
		name:           name,
		price:          price,
		totalAvailable: totalAvailable,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) Price() int64         { return e.price }
func (e *Equipment) TotalAvailable() int  { return e.totalAvailable }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
