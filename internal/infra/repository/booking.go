package repository

import (
	"context"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create persists the booking together with one booking_slots row per
// occupied hour and its equipment lines, all in one transaction. A unique
// violation on the slot indexes means another request won the slot between
// snapshot and insert; callers detect it via KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (user_id, court_id, coach_id, booking_date, time_slot, hours, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		b.UserID(),
		b.CourtID(),
		pgconv.UUIDPtrToPgtype(b.CoachID()),
		pgconv.DateToPgtype(b.Date().Time()),
		b.Slot().String(),
		b.Hours(),
		b.TotalPrice(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert booking", err)
	}

	for _, slot := range b.CoveredSlots() {
		_, err = tx.Exec(ctx, `
			INSERT INTO booking_slots (booking_id, court_id, coach_id, booking_date, time_slot)
			VALUES ($1, $2, $3, $4, $5)
		`,
			id,
			b.CourtID(),
			pgconv.UUIDPtrToPgtype(b.CoachID()),
			pgconv.DateToPgtype(b.Date().Time()),
			slot.String(),
		)
		if err != nil {
			return uuid.Nil, wrapPgErr("failed to insert booking slot", err)
		}
	}

	for _, line := range b.Lines() {
		_, err = tx.Exec(ctx, `
			INSERT INTO booking_equipment (booking_id, equipment_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`,
			id, line.EquipmentID, line.Quantity, line.UnitPrice,
		)
		if err != nil {
			return uuid.Nil, wrapPgErr("failed to insert booking equipment", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, wrapPgErr("failed to commit booking transaction", err)
	}
	return id, nil
}

// Delete removes the booking; slot and equipment rows go with it through
// ON DELETE CASCADE.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		rowID      uuid.UUID
		userID     uuid.UUID
		courtID    uuid.UUID
		coachID    pgtype.UUID
		date       pgtype.Date
		slot       string
		hours      int
		totalPrice int64
		createdAt  pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, court_id, coach_id, booking_date, time_slot, hours, total_price, created_at
		FROM bookings
		WHERE id = $1
	`, id).Scan(&rowID, &userID, &courtID, &coachID, &date, &slot, &hours, &totalPrice, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}

	lines, err := r.equipmentLines(ctx, id)
	if err != nil {
		return nil, err
	}

	bookingDate := booking.DateOf(pgconv.DateFromPgtype(date))
	bookingSlot, err := booking.NewSlot(slot)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt time slot row", err)
	}

	return booking.ReconstructBooking(
		rowID,
		userID,
		courtID,
		pgconv.UUIDPtrFromPgtype(coachID),
		bookingDate,
		bookingSlot,
		hours,
		lines,
		totalPrice,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *BookingRepository) equipmentLines(ctx context.Context, bookingID uuid.UUID) ([]booking.EquipmentLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT equipment_id, quantity, unit_price
		FROM booking_equipment
		WHERE booking_id = $1
	`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking equipment", err)
	}
	defer rows.Close()

	var lines []booking.EquipmentLine
	for rows.Next() {
		var line booking.EquipmentLine
		if err := rows.Scan(&line.EquipmentID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking equipment", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking equipment", err)
	}
	return lines, nil
}
