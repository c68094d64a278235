package repository

import (
	"context"

	"courtbook/internal/domain/coach"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoachRepository struct {
	pool *pgxpool.Pool
}

func NewCoachRepository(pool *pgxpool.Pool) *CoachRepository {
	return &CoachRepository{pool: pool}
}

func (r *CoachRepository) Create(ctx context.Context, c *coach.Coach) (uuid.UUID, error) {
	query := `
		INSERT INTO coaches (name, price, specialization)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, c.Name(), c.Price(), c.Specialization()).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create coach", err)
	}
	return id, nil
}

func (r *CoachRepository) Update(ctx context.Context, c *coach.Coach) error {
	query := `
		UPDATE coaches
		SET name = $2, price = $3, specialization = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID(), c.Name(), c.Price(), c.Specialization())
	if err != nil {
		return wrapPgErr("failed to update coach", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coach not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CoachRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete coach", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coach not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CoachRepository) FindByID(ctx context.Context, id uuid.UUID) (*coach.Coach, error) {
	query := `
		SELECT id, name, price, specialization, created_at, updated_at
		FROM coaches
		WHERE id = $1
	`

	var (
		rowID          uuid.UUID
		name           string
		price          int64
		specialization string
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &name, &price, &specialization, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coach not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coach by id", err)
	}

	return coach.ReconstructCoach(
		rowID,
		name,
		price,
		specialization,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
