package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/metrics"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

// CreateBooking books a desk for the user on date over window, as a single
// transaction. The user row is locked first so concurrent creates by the
// same user serialize even across different desks, then the desk row so
// every writer for the same desk serializes too; the guard and conflict
// re-checks below therefore observe committed state. First committer wins;
// the loser fails with ErrSlotConflict and the engine never retries on its
// own. Locks are always taken user before desk so writers cannot deadlock.
func (s *Service) CreateBooking(ctx context.Context, userID, deskID int64, date time.Time, window TimeRange) (*repository.Booking, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be a positive integer", ErrValidation)
	}
	if deskID <= 0 {
		return nil, fmt.Errorf("%w: desk id must be a positive integer", ErrValidation)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	now := s.clock.Now()
	day := dateOf(date)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.users.LockTx(ctx, tx, userID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: user %d does not exist", ErrValidation, userID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if _, err := s.desks.LockActiveTx(ctx, tx, deskID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: desk %d does not exist", ErrValidation, deskID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	active, err := s.bookings.GetActiveForUserTx(ctx, tx, userID, dateOf(now), minutesOf(now))
	if err == nil {
		metrics.BookingConflictsTotal.WithLabelValues("active_booking").Inc()
		return nil, &ActiveBookingError{Booking: active}
	}
	if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if _, err := s.bookings.GetOverlapTx(ctx, tx, deskID, day, window.Start, window.End); err == nil {
		metrics.BookingConflictsTotal.WithLabelValues("slot").Inc()
		return nil, fmt.Errorf("%w: desk %d on %s for %s", ErrSlotConflict, deskID, day.Format("2006-01-02"), window)
	} else if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	booking := &repository.Booking{
		UserID:      userID,
		DeskID:      deskID,
		BookingDate: day,
		StartTime:   window.Start,
		EndTime:     window.End,
		Status:      repository.StatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookings.CreateTx(ctx, tx, booking); err != nil {
		if isSlotConstraintViolation(err) {
			metrics.BookingConflictsTotal.WithLabelValues("slot").Inc()
			return nil, fmt.Errorf("%w: desk %d on %s for %s", ErrSlotConflict, deskID, day.Format("2006-01-02"), window)
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

	if err := s.recordEventTx(ctx, tx, "booking_confirmed", booking, now); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isSlotConstraintViolation(err) {
			metrics.BookingConflictsTotal.WithLabelValues("slot").Inc()
			return nil, fmt.Errorf("%w: desk %d on %s for %s", ErrSlotConflict, deskID, day.Format("2006-01-02"), window)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info("booking confirmed",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", userID),
		zap.Int64("desk_id", deskID),
		zap.String("date", day.Format("2006-01-02")),
		zap.String("window", window.String()),
	)
	return booking, nil
}

func (s *Service) recordEventTx(ctx context.Context, tx db.Tx, event string, b *repository.Booking, at time.Time) error {
	payload, err := json.Marshal(repository.BookingEventPayload{
		Event:       event,
		BookingID:   b.ID,
		UserID:      b.UserID,
		DeskID:      b.DeskID,
		BookingDate: b.BookingDate.Format("2006-01-02"),
		StartTime:   FormatMinutes(b.StartTime),
		EndTime:     FormatMinutes(b.EndTime),
		Status:      b.Status,
		OccurredAt:  at,
	})
	if err != nil {
		return err
	}
	return s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: payload,
		Topic:   EventsTopic,
	})
}

// isSlotConstraintViolation recognizes the store-level defense for the
// no-double-booking invariant: the exclusion constraint on
// (desk_id, booking_date, window) or a unique violation raised by a
// concurrent conflicting commit.
func isSlotConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23P01" || pgErr.Code == "23505" || pgErr.Code == "40001"
}
