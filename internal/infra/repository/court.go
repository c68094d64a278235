package repository

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourtRepository struct {
	pool *pgxpool.Pool
}

func NewCourtRepository(pool *pgxpool.Pool) *CourtRepository {
	return &CourtRepository{pool: pool}
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) (uuid.UUID, error) {
	query := `
		INSERT INTO courts (name, court_type, base_price, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		c.Name(), c.CourtType().String(), c.BasePrice(), c.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create court", err)
	}
	return id, nil
}

func (r *CourtRepository) Update(ctx context.Context, c *court.Court) error {
	query := `
		UPDATE courts
		SET name = $2, court_type = $3, base_price = $4, is_active = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		c.ID(), c.Name(), c.CourtType().String(), c.BasePrice(), c.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to update court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	query := `
		SELECT id, name, court_type, base_price, is_active, created_at, updated_at
		FROM courts
		WHERE id = $1
	`

	var (
		rowID     uuid.UUID
		name      string
		courtType string
		basePrice int64
		isActive  bool
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &name, &courtType, &basePrice, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by id", err)
	}

	return court.ReconstructCourt(
		rowID,
		name,
		court.Type(courtType),
		basePrice,
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
