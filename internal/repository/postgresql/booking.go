package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type BookingRepo struct {
	db db.DB
}

func NewBookingRepo(db db.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) CreateTx(ctx context.Context, tx db.Tx, booking *repository.Booking) error {
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO bookings (user_id, desk_id, booking_date, start_time, end_time, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, booking.UserID, booking.DeskID, booking.BookingDate, booking.StartTime, booking.EndTime,
		booking.Status, booking.CreatedAt, booking.UpdatedAt).Scan(&booking.ID)
	if err != nil {
		return err
	}
	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*repository.Booking, error) {
	var booking repository.Booking
	err := r.db.Get(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetConflictingDeskIDs returns desk ids holding a CONFIRMED booking on the
// date whose window overlaps [start, end). Overlap is strict, back-to-back
// windows do not conflict.
func (r *BookingRepo) GetConflictingDeskIDs(ctx context.Context, date time.Time, start, end int) ([]int64, error) {
	var deskIDs []int64
	err := r.db.Select(ctx, &deskIDs, `
        SELECT DISTINCT desk_id FROM bookings
        WHERE booking_date = $1
        AND status = $2
        AND start_time < $4 AND end_time > $3
    `, date, repository.StatusConfirmed, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get conflicting desks: %w", err)
	}
	return deskIDs, nil
}

// GetOverlapTx returns a CONFIRMED booking on (deskID, date) overlapping
// [start, end), or ErrObjectNotFound when the slot is free.
func (r *BookingRepo) GetOverlapTx(ctx context.Context, tx db.Tx, deskID int64, date time.Time, start, end int) (*repository.Booking, error) {
	var booking repository.Booking
	err := tx.Get(ctx, &booking, `
        SELECT * FROM bookings
        WHERE desk_id = $1
        AND booking_date = $2
        AND status = $3
        AND start_time < $5 AND end_time > $4
        LIMIT 1
    `, deskID, date, repository.StatusConfirmed, start, end)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetActiveForUserTx returns the user's CONFIRMED booking whose window has
// not yet elapsed: a future date, or today with end_time after nowMinutes.
func (r *BookingRepo) GetActiveForUserTx(ctx context.Context, tx db.Tx, userID int64, today time.Time, nowMinutes int) (*repository.Booking, error) {
	var booking repository.Booking
	err := tx.Get(ctx, &booking, `
        SELECT * FROM bookings
        WHERE user_id = $1
        AND status = $2
        AND (booking_date > $3 OR (booking_date = $3 AND end_time > $4))
        LIMIT 1
    `, userID, repository.StatusConfirmed, today, nowMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateStatusIfConfirmedTx flips the user's CONFIRMED booking on the desk
// to newStatus. The status guard makes the transition a compare-and-swap:
// of two racing calls exactly one sees a row, the other gets
// ErrObjectNotFound. The id subselect pins the update to the newest
// CONFIRMED booking, so a stale never-checked-out row from an earlier date
// is left alone.
func (r *BookingRepo) UpdateStatusIfConfirmedTx(ctx context.Context, tx db.Tx, userID, deskID int64, newStatus string) (*repository.Booking, error) {
	var booking repository.Booking
	err := tx.ExecQueryRow(ctx, `
        UPDATE bookings
        SET status = $3, updated_at = $4
        WHERE id = (
            SELECT id FROM bookings
            WHERE user_id = $1
            AND desk_id = $2
            AND status = $5
            ORDER BY booking_date DESC, id DESC
            LIMIT 1
        )
        RETURNING id, user_id, desk_id, booking_date, start_time, end_time, status, created_at, updated_at
    `, userID, deskID, newStatus, time.Now().UTC(), repository.StatusConfirmed).Scan(
		&booking.ID, &booking.UserID, &booking.DeskID, &booking.BookingDate,
		&booking.StartTime, &booking.EndTime, &booking.Status, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// CancelByIDTx cancels the booking only if it is still CONFIRMED and owned
// by userID. Same compare-and-swap shape as checkout.
func (r *BookingRepo) CancelByIDTx(ctx context.Context, tx db.Tx, bookingID, userID int64) (*repository.Booking, error) {
	var booking repository.Booking
	err := tx.ExecQueryRow(ctx, `
        UPDATE bookings
        SET status = $3, updated_at = $4
        WHERE id = $1
        AND user_id = $2
        AND status = $5
        RETURNING id, user_id, desk_id, booking_date, start_time, end_time, status, created_at, updated_at
    `, bookingID, userID, repository.StatusCancelled, time.Now().UTC(), repository.StatusConfirmed).Scan(
		&booking.ID, &booking.UserID, &booking.DeskID, &booking.BookingDate,
		&booking.StartTime, &booking.EndTime, &booking.Status, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepo) GetByUserID(ctx context.Context, userID int64, activeOnly bool, today time.Time, nowMinutes int) ([]*repository.Booking, error) {
	query := "SELECT * FROM bookings WHERE user_id = $1"
	args := []interface{}{userID}

	if activeOnly {
		query += " AND status = $2 AND (booking_date > $3 OR (booking_date = $3 AND end_time > $4))"
		args = append(args, repository.StatusConfirmed, today, nowMinutes)
	}

	query += " ORDER BY created_at DESC"

	var bookings []*repository.Booking
	err := r.db.Select(ctx, &bookings, query, args...)
	return bookings, err
}
