package commands

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/domain/coach"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
)

var (
	ErrCoachNotFound   = errs.New("coach not found")
	ErrCoachInvalid    = errs.New("invalid coach data")
	ErrCoachNameTaken  = errs.New("coach name already exists")
	ErrCoachReferenced = errs.New("coach has bookings")
)

type CoachParams struct {
	Name           string
	Price          int64
	Specialization string
}

type CoachCommands interface {
	Create(ctx context.Context, params CoachParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params CoachParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type coachCommandsImpl struct {
	repo CoachRepository
}

func NewCoachCommands(repo CoachRepository) CoachCommands {
	return &coachCommandsImpl{repo: repo}
}

func (c *coachCommandsImpl) Create(ctx context.Context, params CoachParams) (uuid.UUID, error) {
	entity, err := coach.NewCoach(params.Name, params.Price, params.Specialization)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrCoachInvalid)
	}
	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrCoachNameTaken
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *coachCommandsImpl) Update(ctx context.Context, id uuid.UUID, params CoachParams) error {
	existing, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCoachNotFound
		}
		return err
	}

	updated, err := coach.NewCoach(params.Name, params.Price, params.Specialization)
	if err != nil {
		return errs.Mark(err, ErrCoachInvalid)
	}

	err = c.repo.Update(ctx, coach.ReconstructCoach(
		existing.ID(),
		updated.Name(),
		updated.Price(),
		updated.Specialization(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	))
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrCoachNameTaken
	}
	return err
}

func (c *coachCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCoachNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrCoachReferenced
	default:
		return err
	}
}
