package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"
)

const bookingViewSelect = `
	SELECT b.id, b.user_id, u.username, b.court_id, c.name, b.coach_id, co.name,
	       b.booking_date, b.time_slot, b.hours, b.total_price, b.created_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN courts c ON c.id = b.court_id
	LEFT JOIN coaches co ON co.id = b.coach_id
`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}

	if err := r.attachEquipment(ctx, []*queries.BookingView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, bookingViewSelect+`
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC, b.time_slot DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingReadStore) ListAfter(ctx context.Context, after time.Time, afterID uuid.UUID, limit int) ([]queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, bookingViewSelect+`
		WHERE $1::timestamptz = 'epoch'::timestamptz OR (b.created_at, b.id) < ($1, $2)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $3
	`, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return r.collect(ctx, rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		coachID   pgtype.UUID
		coachName pgtype.Text
		date      pgtype.Date
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.Username, &view.CourtID, &view.CourtName,
		&coachID, &coachName, &date, &view.TimeSlot, &view.Hours, &view.TotalPrice, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.CoachID = pgconv.UUIDPtrFromPgtype(coachID)
	view.CoachName = pgconv.StringPtrFromPgtype(coachName)
	view.Date = pgconv.DateFromPgtype(date).Format(booking.DateLayout)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *BookingReadStore) collect(ctx context.Context, rows pgx.Rows) ([]queries.BookingView, error) {
	defer rows.Close()

	var views []queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	refs := make([]*queries.BookingView, len(views))
	for i := range views {
		refs[i] = &views[i]
	}
	if err := r.attachEquipment(ctx, refs); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) attachEquipment(ctx context.Context, views []*queries.BookingView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.BookingView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.pool.Query(ctx, `
		SELECT be.booking_id, be.equipment_id, e.name, be.quantity, be.unit_price
		FROM booking_equipment be
		JOIN equipment e ON e.id = be.equipment_id
		WHERE be.booking_id = ANY($1)
	`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load booking equipment", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID uuid.UUID
			line      queries.BookingEquipmentView
		)
		if err := rows.Scan(&bookingID, &line.EquipmentID, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return infra.WrapRepoErr("failed to scan booking equipment row", err)
		}
		if view, ok := byID[bookingID]; ok {
			view.Equipment = append(view.Equipment, line)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate booking equipment", err)
	}
	return nil
}
