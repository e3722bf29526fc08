package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/Idowu-David/Nithub-Booking-System/internal/db/mocks"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

// stubRow satisfies pgx.Row for ExecQueryRow expectations.
type stubRow struct {
	scan func(dest ...interface{}) error
}

func (r stubRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

func TestBookingRepoCreateTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := mock_database.NewMockTx(ctrl)
	repo := NewBookingRepo(mock_database.NewMockDB(ctrl))

	booking := &repository.Booking{
		UserID:      7,
		DeskID:      3,
		BookingDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   540,
		EndTime:     600,
		Status:      repository.StatusConfirmed,
	}

	tx.EXPECT().
		ExecQueryRow(gomock.Any(), gomock.Any(),
			booking.UserID, booking.DeskID, booking.BookingDate, booking.StartTime,
			booking.EndTime, booking.Status, booking.CreatedAt, booking.UpdatedAt).
		Return(stubRow{scan: func(dest ...interface{}) error {
			*dest[0].(*int64) = 101
			return nil
		}})

	err := repo.CreateTx(context.Background(), tx, booking)
	require.NoError(t, err)
	assert.Equal(t, int64(101), booking.ID)
}

func TestBookingRepoGetOverlapTx(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("free slot maps ErrNoRows to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := mock_database.NewMockTx(ctrl)
		repo := NewBookingRepo(mock_database.NewMockDB(ctrl))

		tx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				int64(3), date, repository.StatusConfirmed, 540, 600).
			Return(pgx.ErrNoRows)

		_, err := repo.GetOverlapTx(context.Background(), tx, 3, date, 540, 600)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("taken slot returns the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := mock_database.NewMockTx(ctrl)
		repo := NewBookingRepo(mock_database.NewMockDB(ctrl))

		tx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(),
				int64(3), date, repository.StatusConfirmed, 540, 600).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				b := dest.(*repository.Booking)
				b.ID = 41
				b.DeskID = 3
				b.Status = repository.StatusConfirmed
				return nil
			})

		got, err := repo.GetOverlapTx(context.Background(), tx, 3, date, 540, 600)
		require.NoError(t, err)
		assert.Equal(t, int64(41), got.ID)
	})
}

func TestBookingRepoGetActiveForUserTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := mock_database.NewMockTx(ctrl)
	repo := NewBookingRepo(mock_database.NewMockDB(ctrl))
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tx.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any(),
			int64(7), repository.StatusConfirmed, today, 555).
		Return(pgx.ErrNoRows)

	_, err := repo.GetActiveForUserTx(context.Background(), tx, 7, today, 555)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}

func TestBookingRepoUpdateStatusIfConfirmedTx(t *testing.T) {
	t.Run("no confirmed row maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := mock_database.NewMockTx(ctrl)
		repo := NewBookingRepo(mock_database.NewMockDB(ctrl))

		tx.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(),
				int64(7), int64(3), repository.StatusCheckedOut, gomock.Any(), repository.StatusConfirmed).
			Return(stubRow{scan: func(...interface{}) error { return pgx.ErrNoRows }})

		_, err := repo.UpdateStatusIfConfirmedTx(context.Background(), tx, 7, 3, repository.StatusCheckedOut)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("returns the transitioned row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := mock_database.NewMockTx(ctrl)
		repo := NewBookingRepo(mock_database.NewMockDB(ctrl))

		tx.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(),
				int64(7), int64(3), repository.StatusCheckedOut, gomock.Any(), repository.StatusConfirmed).
			DoAndReturn(func(_ context.Context, query string, _ ...interface{}) pgx.Row {
				// Only the newest CONFIRMED row may transition; stale rows
				// from earlier dates stay untouched.
				assert.Contains(t, query, "ORDER BY booking_date DESC, id DESC")
				assert.Contains(t, query, "LIMIT 1")
				return stubRow{scan: func(dest ...interface{}) error {
					*dest[0].(*int64) = 101
					*dest[1].(*int64) = 7
					*dest[2].(*int64) = 3
					*dest[6].(*string) = repository.StatusCheckedOut
					return nil
				}}
			})

		got, err := repo.UpdateStatusIfConfirmedTx(context.Background(), tx, 7, 3, repository.StatusCheckedOut)
		require.NoError(t, err)
		assert.Equal(t, int64(101), got.ID)
		assert.Equal(t, repository.StatusCheckedOut, got.Status)
	})
}

func TestBookingRepoGetConflictingDeskIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mock_database.NewMockDB(ctrl)
	repo := NewBookingRepo(db)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	db.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(),
			date, repository.StatusConfirmed, 540, 600).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*dest.(*[]int64) = []int64{3, 8}
			return nil
		})

	got, err := repo.GetConflictingDeskIDs(context.Background(), date, 540, 600)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 8}, got)
}

func TestBookingRepoGetByUserID(t *testing.T) {
	today := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("active filter binds today and clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := mock_database.NewMockDB(ctrl)
		repo := NewBookingRepo(db)

		db.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(),
				int64(7), repository.StatusConfirmed, today, 480).
			Return(nil)

		_, err := repo.GetByUserID(context.Background(), 7, true, today, 480)
		require.NoError(t, err)
	})

	t.Run("without filter only the user id is bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := mock_database.NewMockDB(ctrl)
		repo := NewBookingRepo(db)

		db.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), int64(7)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*[]*repository.Booking) = []*repository.Booking{{ID: 101, UserID: 7}}
				return nil
			})

		got, err := repo.GetByUserID(context.Background(), 7, false, today, 480)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(101), got[0].ID)
	})
}
