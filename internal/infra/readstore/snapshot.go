package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"
)

// SnapshotReadStore loads the point-in-time state a booking request is
// validated against. It reads with plain SELECTs; the unique slot indexes
// catch whatever changes between this read and the insert.
type SnapshotReadStore struct {
	pool *pgxpool.Pool
}

func NewSnapshotReadStore(pool *pgxpool.Pool) *SnapshotReadStore {
	return &SnapshotReadStore{pool: pool}
}

func (r *SnapshotReadStore) Load(ctx context.Context, courtID uuid.UUID, coachID *uuid.UUID, date booking.Date) (booking.Snapshot, error) {
	var snap booking.Snapshot

	courtSpec, err := r.courtSpec(ctx, courtID)
	if err != nil {
		return snap, err
	}
	snap.Court = courtSpec

	if coachID != nil {
		coachSpec, err := r.coachSpec(ctx, *coachID)
		if err != nil {
			return snap, err
		}
		snap.Coach = coachSpec
	}

	snap.Equipment, err = r.equipmentSpecs(ctx)
	if err != nil {
		return snap, err
	}

	snap.Existing, err = r.ExistingByDate(ctx, date)
	if err != nil {
		return snap, err
	}

	snap.Rules, err = r.Rules(ctx)
	if err != nil {
		return snap, err
	}

	return snap, nil
}

// courtSpec returns nil without error when the court does not exist; the
// validator turns that into a not-found rejection.
func (r *SnapshotReadStore) courtSpec(ctx context.Context, id uuid.UUID) (*booking.CourtSpec, error) {
	var (
		spec      booking.CourtSpec
		courtType string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, court_type, base_price, is_active
		FROM courts
		WHERE id = $1
	`, id).Scan(&spec.ID, &spec.Name, &courtType, &spec.BasePrice, &spec.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load court snapshot", err)
	}
	spec.Indoor = courtType == "indoor"
	return &spec, nil
}

func (r *SnapshotReadStore) coachSpec(ctx context.Context, id uuid.UUID) (*booking.CoachSpec, error) {
	var spec booking.CoachSpec
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price
		FROM coaches
		WHERE id = $1
	`, id).Scan(&spec.ID, &spec.Name, &spec.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load coach snapshot", err)
	}
	return &spec, nil
}

func (r *SnapshotReadStore) equipmentSpecs(ctx context.Context) (map[uuid.UUID]booking.EquipmentSpec, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, total_available
		FROM equipment
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load equipment snapshot", err)
	}
	defer rows.Close()

	specs := make(map[uuid.UUID]booking.EquipmentSpec)
	for rows.Next() {
		var spec booking.EquipmentSpec
		if err := rows.Scan(&spec.ID, &spec.Name, &spec.UnitPrice, &spec.TotalAvailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment snapshot row", err)
		}
		specs[spec.ID] = spec
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment snapshot", err)
	}
	return specs, nil
}

func (r *SnapshotReadStore) ExistingByDate(ctx context.Context, date booking.Date) ([]booking.Existing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, court_id, coach_id, booking_date, time_slot, hours
		FROM bookings
		WHERE booking_date = $1
	`, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load day bookings", err)
	}
	defer rows.Close()

	var existing []booking.Existing
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			e       booking.Existing
			coachID pgtype.UUID
			day     pgtype.Date
			slot    string
		)
		if err := rows.Scan(&e.ID, &e.CourtID, &coachID, &day, &slot, &e.Hours); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day booking row", err)
		}
		e.CoachID = pgconv.UUIDPtrFromPgtype(coachID)
		e.Date = booking.DateOf(pgconv.DateFromPgtype(day))
		e.Slot, err = booking.NewSlot(slot)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt time slot row", err)
		}
		byID[e.ID] = len(existing)
		existing = append(existing, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day bookings", err)
	}

	if len(existing) == 0 {
		return existing, nil
	}

	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	lineRows, err := r.pool.Query(ctx, `
		SELECT booking_id, equipment_id, quantity, unit_price
		FROM booking_equipment
		WHERE booking_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load day booking equipment", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			bookingID uuid.UUID
			line      booking.EquipmentLine
		)
		if err := lineRows.Scan(&bookingID, &line.EquipmentID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day booking equipment row", err)
		}
		if idx, ok := byID[bookingID]; ok {
			existing[idx].Equipment = append(existing[idx].Equipment, line)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day booking equipment", err)
	}

	return existing, nil
}

func (r *SnapshotReadStore) Rules(ctx context.Context) (pricing.RuleSet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rule_type, enabled, multiplier, start_time, end_time, discount, min_items, apply_days
		FROM pricing_rules
	`)
	if err != nil {
		return pricing.RuleSet{}, infra.WrapRepoErr("failed to load pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var (
			rule     pricing.Rule
			ruleType string
		)
		if err := rows.Scan(&ruleType, &rule.Enabled, &rule.Multiplier, &rule.StartTime, &rule.EndTime, &rule.Discount, &rule.MinItems, &rule.ApplyDays); err != nil {
			return pricing.RuleSet{}, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}
		rule.Type = pricing.RuleType(ruleType)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return pricing.RuleSet{}, infra.WrapRepoErr("failed to iterate pricing rules", err)
	}

	return pricing.NewRuleSet(rules), nil
}
