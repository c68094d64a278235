package repository

import (
	"context"

	"courtbook/internal/domain/equipment"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepository struct {
	pool *pgxpool.Pool
}

func NewEquipmentRepository(pool *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{pool: pool}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) (uuid.UUID, error) {
	query := `
		INSERT INTO equipment (name, price, total_available)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, e.Name(), e.Price(), e.TotalAvailable()).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create equipment", err)
	}
	return id, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $2, price = $3, total_available = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, e.ID(), e.Name(), e.Price(), e.TotalAvailable())
	if err != nil {
		return wrapPgErr("failed to update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	query := `
		SELECT id, name, price, total_available, created_at, updated_at
		FROM equipment
		WHERE id = $1
	`

	var (
		rowID          uuid.UUID
		name           string
		price          int64
		totalAvailable int
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &name, &price, &totalAvailable, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by id", err)
	}

	return equipment.ReconstructEquipment(
		rowID,
		name,
		price,
		totalAvailable,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
