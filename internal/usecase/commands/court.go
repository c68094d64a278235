package commands

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/domain/court"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
)

var (
	ErrCourtNotFound   = errs.New("court not found")
	ErrCourtInvalid    = errs.New("invalid court data")
	ErrCourtNameTaken  = errs.New("court name already exists")
	ErrCourtReferenced = errs.New("court has bookings")
)

type CourtParams struct {
	Name      string
	CourtType string
	BasePrice int64
	IsActive  bool
}

type CourtCommands interface {
	Create(ctx context.Context, params CourtParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params CourtParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type courtCommandsImpl struct {
	repo CourtRepository
}

func NewCourtCommands(repo CourtRepository) CourtCommands {
	return &courtCommandsImpl{repo: repo}
}

func (c *courtCommandsImpl) Create(ctx context.Context, params CourtParams) (uuid.UUID, error) {
	entity, err := newCourt(params)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrCourtNameTaken
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *courtCommandsImpl) Update(ctx context.Context, id uuid.UUID, params CourtParams) error {
	existing, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return err
	}

	courtType, err := court.NewType(params.CourtType)
	if err != nil {
		return errs.Mark(err, ErrCourtInvalid)
	}
	updated, err := court.NewCourt(params.Name, courtType, params.BasePrice, params.IsActive)
	if err != nil {
		return errs.Mark(err, ErrCourtInvalid)
	}

	err = c.repo.Update(ctx, court.ReconstructCourt(
		existing.ID(),
		updated.Name(),
		updated.CourtType(),
		updated.BasePrice(),
		updated.IsActive(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	))
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrCourtNameTaken
	}
	return err
}

// Delete refuses to remove a court that existing bookings still reference.
func (c *courtCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCourtNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrCourtReferenced
	default:
		return err
	}
}

func newCourt(params CourtParams) (*court.Court, error) {
	courtType, err := court.NewType(params.CourtType)
	if err != nil {
		return nil, errs.Mark(err, ErrCourtInvalid)
	}
	entity, err := court.NewCourt(params.Name, courtType, params.BasePrice, params.IsActive)
	if err != nil {
		return nil, errs.Mark(err, ErrCourtInvalid)
	}
	return entity, nil
}
