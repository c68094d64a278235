package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/pgconv"
	"courtbook/internal/usecase/queries"
)

type ReportReadStore struct {
	pool *pgxpool.Pool
}

func NewReportReadStore(pool *pgxpool.Pool) *ReportReadStore {
	return &ReportReadStore{pool: pool}
}

func (r *ReportReadStore) Stats(ctx context.Context) (*queries.StatsView, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM courts),
			(SELECT COUNT(*) FROM courts WHERE is_active),
			(SELECT COUNT(*) FROM coaches),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE booking_date = CURRENT_DATE),
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings)
	`

	var view queries.StatsView
	err := r.pool.QueryRow(ctx, query).Scan(
		&view.TotalUsers,
		&view.TotalCourts,
		&view.ActiveCourts,
		&view.TotalCoaches,
		&view.TotalBookings,
		&view.TodayBookings,
		&view.TotalRevenue,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load stats", err)
	}

	return &view, nil
}

func (r *ReportReadStore) RevenueByDay(ctx context.Context, from, to string) ([]queries.RevenueByDayView, error) {
	query := `
		SELECT booking_date, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM bookings
		WHERE booking_date BETWEEN $1 AND $2
		GROUP BY booking_date
		ORDER BY booking_date
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load revenue report", err)
	}
	defer rows.Close()

	var views []queries.RevenueByDayView
	for rows.Next() {
		var (
			view queries.RevenueByDayView
			day  pgtype.Date
		)
		if err := rows.Scan(&day, &view.Bookings, &view.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}
		view.Date = pgconv.DateFromPgtype(day).Format(booking.DateLayout)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue report", err)
	}

	return views, nil
}

func (r *ReportReadStore) RevenueByCourtType(ctx context.Context, from, to string) ([]queries.RevenueByCourtTypeView, error) {
	query := `
		SELECT c.court_type, COUNT(*), COALESCE(SUM(b.total_price), 0)
		FROM bookings b
		JOIN courts c ON c.id = b.court_id
		WHERE ($1 = '' OR b.booking_date >= $1::date)
		  AND ($2 = '' OR b.booking_date <= $2::date)
		GROUP BY c.court_type
		ORDER BY c.court_type
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load revenue by court type", err)
	}
	defer rows.Close()

	var views []queries.RevenueByCourtTypeView
	for rows.Next() {
		var view queries.RevenueByCourtTypeView
		if err := rows.Scan(&view.CourtType, &view.Bookings, &view.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court type revenue row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue by court type", err)
	}

	return views, nil
}

func (r *ReportReadStore) RevenueByMonth(ctx context.Context) ([]queries.RevenueByMonthView, error) {
	query := `
		SELECT to_char(booking_date, 'YYYY-MM'), COUNT(*), COALESCE(SUM(total_price), 0)
		FROM bookings
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load revenue by month", err)
	}
	defer rows.Close()

	var views []queries.RevenueByMonthView
	for rows.Next() {
		var view queries.RevenueByMonthView
		if err := rows.Scan(&view.Month, &view.Bookings, &view.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan monthly revenue row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue by month", err)
	}

	return views, nil
}

func (r *ReportReadStore) TopSpenders(ctx context.Context, limit int) ([]queries.TopSpenderView, error) {
	query := `
		SELECT u.id, u.username, COUNT(*), COALESCE(SUM(b.total_price), 0) AS total_spent
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		GROUP BY u.id, u.username
		ORDER BY total_spent DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load top spenders", err)
	}
	defer rows.Close()

	var views []queries.TopSpenderView
	for rows.Next() {
		var view queries.TopSpenderView
		if err := rows.Scan(&view.UserID, &view.Username, &view.Bookings, &view.TotalSpent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan top spender row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate top spenders", err)
	}

	return views, nil
}
