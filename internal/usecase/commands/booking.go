package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type CreateBookingParams struct {
	CourtID   uuid.UUID
	Date      string
	TimeSlot  string
	Hours     int
	CoachID   *uuid.UUID
	Equipment map[uuid.UUID]int
}

type BookingCommands interface {
	Create(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, *booking.Rejection, error)
	Cancel(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isAdmin bool) error
}

type bookingCommandsImpl struct {
	repo      BookingRepository
	snapshots SnapshotReader
	readStore queries.BookingReadStore
	validator *booking.Validator
	clock     clock.Clock
}

func NewBookingCommands(
	repo BookingRepository,
	snapshots SnapshotReader,
	readStore queries.BookingReadStore,
	validator *booking.Validator,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		snapshots: snapshots,
		readStore: readStore,
		validator: validator,
		clock:     clock,
	}
}

// Create validates the request against a point-in-time snapshot and persists
// the accepted booking. A rejection is a normal outcome, returned as a value;
// the error channel is for infrastructure failures only.
func (b *bookingCommandsImpl) Create(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, *booking.Rejection, error) {
	date, err := booking.NewDate(params.Date)
	if err != nil {
		return nil, &booking.Rejection{Reason: booking.ReasonInvalidDate, Detail: params.Date}, nil
	}
	if date.Time().Before(booking.DateOf(b.clock.Now()).Time()) {
		return nil, &booking.Rejection{Reason: booking.ReasonInvalidDate, Detail: "booking date is in the past"}, nil
	}

	snap, err := b.snapshots.Load(ctx, params.CourtID, params.CoachID, date)
	if err != nil {
		return nil, nil, err
	}

	decision := b.validator.Validate(booking.Request{
		CourtID:   params.CourtID,
		Date:      params.Date,
		Slot:      params.TimeSlot,
		Hours:     params.Hours,
		CoachID:   params.CoachID,
		Equipment: params.Equipment,
	}, snap)
	if !decision.IsAccepted() {
		return nil, decision.Rejected, nil
	}

	entity := booking.NewBooking(*decision.Accepted, userID)
	id, err := b.repo.Create(ctx, entity)
	if err != nil {
		// Another request won the same slot between snapshot and insert.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Info("booking lost slot race", "court_id", params.CourtID, "date", params.Date, "slot", params.TimeSlot)
			return nil, &booking.Rejection{
				Reason: booking.ReasonCourtSlotTaken,
				Detail: params.TimeSlot,
			}, nil
		}
		return nil, nil, err
	}

	view, err := b.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return view, nil, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isAdmin bool) error {
	entity, err := b.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if !isAdmin && entity.UserID() != requesterID {
		return ErrBookingAccess
	}

	if err := b.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}
