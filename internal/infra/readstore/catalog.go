package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"
)

type CatalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{pool: pool}
}

func (r *CatalogReadStore) ListCourts(ctx context.Context, includeInactive bool) ([]queries.CourtView, error) {
	query := `
		SELECT id, name, court_type, base_price, is_active, created_at, updated_at
		FROM courts
		WHERE is_active OR $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var views []queries.CourtView
	for rows.Next() {
		var (
			view      queries.CourtView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.CourtType, &view.BasePrice, &view.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate courts", err)
	}

	return views, nil
}

func (r *CatalogReadStore) FindCourtByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	query := `
		SELECT id, name, court_type, base_price, is_active, created_at, updated_at
		FROM courts
		WHERE id = $1
	`

	var (
		view      queries.CourtView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.CourtType, &view.BasePrice, &view.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func (r *CatalogReadStore) ListCoaches(ctx context.Context) ([]queries.CoachView, error) {
	query := `
		SELECT id, name, price, specialization, created_at, updated_at
		FROM coaches
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coaches", err)
	}
	defer rows.Close()

	var views []queries.CoachView
	for rows.Next() {
		var (
			view      queries.CoachView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Price, &view.Specialization, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coach row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coaches", err)
	}

	return views, nil
}

func (r *CatalogReadStore) ListEquipment(ctx context.Context) ([]queries.EquipmentView, error) {
	query := `
		SELECT id, name, price, total_available, created_at, updated_at
		FROM equipment
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var views []queries.EquipmentView
	for rows.Next() {
		var (
			view      queries.EquipmentView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Price, &view.TotalAvailable, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment", err)
	}

	return views, nil
}

func (r *CatalogReadStore) ListPricingRules(ctx context.Context) ([]queries.PricingRuleView, error) {
	query := `
		SELECT rule_type, enabled, multiplier, start_time, end_time, discount, min_items, apply_days, updated_at
		FROM pricing_rules
		ORDER BY rule_type
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var views []queries.PricingRuleView
	for rows.Next() {
		var (
			view      queries.PricingRuleView
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.RuleType, &view.Enabled, &view.Multiplier, &view.StartTime, &view.EndTime,
			&view.Discount, &view.MinItems, &view.ApplyDays, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rules", err)
	}

	return views, nil
}
