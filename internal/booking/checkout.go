package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/metrics"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

// Checkout transitions the user's CONFIRMED booking on the desk to
// CHECKED_OUT. The transition is a conditional update guarded on the
// current status, so a second checkout for the same booking observes no
// matching row and gets ErrNotFound. A checked-out booking never returns
// to CONFIRMED.
func (s *Service) Checkout(ctx context.Context, userID, deskID int64) (*repository.Booking, error) {
	if userID <= 0 || deskID <= 0 {
		return nil, fmt.Errorf("%w: user id and desk id must be positive integers", ErrValidation)
	}

	return s.transition(ctx, "booking_checked_out", func(tx db.Tx) (*repository.Booking, error) {
		return s.bookings.UpdateStatusIfConfirmedTx(ctx, tx, userID, deskID, repository.StatusCheckedOut)
	}, func(b *repository.Booking) {
		metrics.BookingsCheckedOutTotal.Inc()
		s.logger.Info("booking checked out",
			zap.Int64("booking_id", b.ID),
			zap.Int64("user_id", userID),
			zap.Int64("desk_id", deskID),
		)
	})
}

// Cancel cancels the user's own CONFIRMED booking.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) (*repository.Booking, error) {
	if userID <= 0 || bookingID <= 0 {
		return nil, fmt.Errorf("%w: user id and booking id must be positive integers", ErrValidation)
	}

	return s.transition(ctx, "booking_cancelled", func(tx db.Tx) (*repository.Booking, error) {
		return s.bookings.CancelByIDTx(ctx, tx, bookingID, userID)
	}, func(b *repository.Booking) {
		metrics.BookingsCancelledTotal.Inc()
		s.logger.Info("booking cancelled",
			zap.Int64("booking_id", b.ID),
			zap.Int64("user_id", userID),
		)
	})
}

func (s *Service) transition(ctx context.Context, event string, update func(db.Tx) (*repository.Booking, error), onDone func(*repository.Booking)) (*repository.Booking, error) {
	now := s.clock.Now()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	booking, err := update(tx)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: no confirmed booking to transition", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
		BookingID: booking.ID,
		Status:    booking.Status,
		ChangedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := s.recordEventTx(ctx, tx, event, booking, now); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	onDone(booking)
	return booking, nil
}
