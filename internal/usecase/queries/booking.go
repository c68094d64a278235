package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isAdmin bool) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingView, error)
	ListAllBookings(ctx context.Context, after string, limit int) ([]BookingView, string, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]BookingView, error)
	ListAfter(ctx context.Context, after time.Time, afterID uuid.UUID, limit int) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isAdmin bool) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !isAdmin && view.UserID != requesterID {
		return nil, ErrBookingAccess
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

// ListAllBookings pages through every booking in creation order, newest
// first, using an opaque cursor.
func (q *bookingQueriesImpl) ListAllBookings(ctx context.Context, after string, limit int) ([]BookingView, string, error) {
	limit = ValidateLimit(limit)

	afterTime := time.Time{}
	afterID := uuid.Nil
	if after != "" {
		var err error
		afterTime, afterID, err = DecodeAfterCursor(after)
		if err != nil {
			return nil, "", errs.Mark(err, ErrInvalidCursor)
		}
	}

	// Fetch one extra row to know whether a next page exists.
	views, err := q.readStore.ListAfter(ctx, afterTime, afterID, limit+1)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(views) > limit {
		views = views[:limit]
		last := views[len(views)-1]
		next = EncodeAfterCursor(last.CreatedAt, last.ID)
	}

	return views, next, nil
}
