package commands

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/domain/equipment"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
)

var (
	ErrEquipmentNotFound   = errs.New("equipment not found")
	ErrEquipmentInvalid    = errs.New("invalid equipment data")
	ErrEquipmentNameTaken  = errs.New("equipment name already exists")
	ErrEquipmentReferenced = errs.New("equipment has bookings")
)

type EquipmentParams struct {
	Name           string
	Price          int64
	TotalAvailable int
}

type EquipmentCommands interface {
	Create(ctx context.Context, params EquipmentParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params EquipmentParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type equipmentCommandsImpl struct {
	repo EquipmentRepository
}

func NewEquipmentCommands(repo EquipmentRepository) EquipmentCommands {
	return &equipmentCommandsImpl{repo: repo}
}

func (c *equipmentCommandsImpl) Create(ctx context.Context, params EquipmentParams) (uuid.UUID, error) {
	entity, err := equipment.NewEquipment(params.Name, params.Price, params.TotalAvailable)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrEquipmentInvalid)
	}
	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEquipmentNameTaken
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *equipmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, params EquipmentParams) error {
	existing, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}

	updated, err := equipment.NewEquipment(params.Name, params.Price, params.TotalAvailable)
	if err != nil {
		return errs.Mark(err, ErrEquipmentInvalid)
	}

	err = c.repo.Update(ctx, equipment.ReconstructEquipment(
		existing.ID(),
		updated.Name(),
		updated.Price(),
		updated.TotalAvailable(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	))
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrEquipmentNameTaken
	}
	return err
}

func (c *equipmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrEquipmentNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrEquipmentReferenced
	default:
		return err
	}
}
