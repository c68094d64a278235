package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/pkg/errs"
)

var ErrInvalidDateRange = errs.New("invalid date range")

type ReportQueries interface {
	GetStats(ctx context.Context) (*StatsView, error)
	GetRevenueByDay(ctx context.Context, from, to string) ([]RevenueByDayView, error)
	GetRevenueByCourtType(ctx context.Context, from, to string) ([]RevenueByCourtTypeView, error)
	GetRevenueByMonth(ctx context.Context) ([]RevenueByMonthView, error)
	GetTopSpenders(ctx context.Context, limit int) ([]TopSpenderView, error)
}

type ReportReadStore interface {
	Stats(ctx context.Context) (*StatsView, error)
	RevenueByDay(ctx context.Context, from, to string) ([]RevenueByDayView, error)
	RevenueByCourtType(ctx context.Context, from, to string) ([]RevenueByCourtTypeView, error)
	RevenueByMonth(ctx context.Context) ([]RevenueByMonthView, error)
	TopSpenders(ctx context.Context, limit int) ([]TopSpenderView, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{
		readStore: readStore,
	}
}

func (q *reportQueriesImpl) GetStats(ctx context.Context) (*StatsView, error) {
	return q.readStore.Stats(ctx)
}

func (q *reportQueriesImpl) GetRevenueByDay(ctx context.Context, from, to string) ([]RevenueByDayView, error) {
	fromDate, err := parseReportDate(from)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}
	toDate, err := parseReportDate(to)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}
	if toDate.Before(fromDate) {
		return nil, ErrInvalidDateRange
	}

	return q.readStore.RevenueByDay(ctx, from, to)
}

// GetRevenueByCourtType accepts an optional date range: empty from/to leave
// the corresponding bound open.
func (q *reportQueriesImpl) GetRevenueByCourtType(ctx context.Context, from, to string) ([]RevenueByCourtTypeView, error) {
	var fromDate, toDate time.Time
	var err error
	if from != "" {
		fromDate, err = parseReportDate(from)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDateRange)
		}
	}
	if to != "" {
		toDate, err = parseReportDate(to)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDateRange)
		}
	}
	if from != "" && to != "" && toDate.Before(fromDate) {
		return nil, ErrInvalidDateRange
	}

	return q.readStore.RevenueByCourtType(ctx, from, to)
}

func (q *reportQueriesImpl) GetRevenueByMonth(ctx context.Context) ([]RevenueByMonthView, error) {
	return q.readStore.RevenueByMonth(ctx)
}

func (q *reportQueriesImpl) GetTopSpenders(ctx context.Context, limit int) ([]TopSpenderView, error) {
	if limit <= 0 || limit > maxTopSpenders {
		limit = defaultTopSpenders
	}
	return q.readStore.TopSpenders(ctx, limit)
}

const (
	defaultTopSpenders = 10
	maxTopSpenders     = 100
)

func parseReportDate(s string) (time.Time, error) {
	return time.Parse(booking.DateLayout, s)
}
