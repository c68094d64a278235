package repository

import (
	"context"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PricingRuleRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRuleRepository(pool *pgxpool.Pool) *PricingRuleRepository {
	return &PricingRuleRepository{pool: pool}
}

// Upsert writes the given rules keyed by rule_type, all in one transaction
// so a partially applied rule change never becomes visible.
func (r *PricingRuleRepository) Upsert(ctx context.Context, rules []pricing.Rule) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin pricing rule transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `
		INSERT INTO pricing_rules (rule_type, enabled, multiplier, start_time, end_time, discount, min_items, apply_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (rule_type) DO UPDATE SET
			enabled    = EXCLUDED.enabled,
			multiplier = EXCLUDED.multiplier,
			start_time = EXCLUDED.start_time,
			end_time   = EXCLUDED.end_time,
			discount   = EXCLUDED.discount,
			min_items  = EXCLUDED.min_items,
			apply_days = EXCLUDED.apply_days,
			updated_at = now()
	`

	for _, rule := range rules {
		_, err := tx.Exec(ctx, query,
			string(rule.Type),
			rule.Enabled,
			rule.Multiplier,
			rule.StartTime,
			rule.EndTime,
			rule.Discount,
			rule.MinItems,
			rule.ApplyDays,
		)
		if err != nil {
			return wrapPgErr("failed to upsert pricing rule", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit pricing rule transaction", err)
	}
	return nil
}
