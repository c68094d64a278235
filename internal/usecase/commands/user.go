package commands

import (
	"context"

	"github.com/google/uuid"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
)

var (
	ErrInvalidRole    = errs.New("invalid role")
	ErrSelfDeletion   = errs.New("cannot delete own account")
	ErrLastAdmin      = errs.New("cannot remove the last admin")
	ErrTargetNotFound = errs.New("target user not found")
)

type UserCommands interface {
	ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role string) error
	Delete(ctx context.Context, actorID, targetID uuid.UUID) error
}

type userCommandsImpl struct {
	repo UserRepository
}

func NewUserCommands(repo UserRepository) UserCommands {
	return &userCommandsImpl{repo: repo}
}

// ChangeRole demotes or promotes a user while keeping at least one active
// admin in the system.
func (c *userCommandsImpl) ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role string) error {
	newRole, err := user.NewRole(role)
	if err != nil {
		return errs.Mark(err, ErrInvalidRole)
	}

	target, err := c.repo.FindByID(ctx, targetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTargetNotFound
		}
		return err
	}

	if target.IsAdmin() && newRole != user.RoleAdmin {
		admins, err := c.repo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	return c.repo.UpdateRole(ctx, targetID, newRole)
}

func (c *userCommandsImpl) Delete(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfDeletion
	}

	target, err := c.repo.FindByID(ctx, targetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTargetNotFound
		}
		return err
	}

	if target.IsAdmin() {
		admins, err := c.repo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	err = c.repo.Delete(ctx, targetID)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrTargetNotFound
	}
	return err
}
