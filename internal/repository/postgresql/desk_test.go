package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/Idowu-David/Nithub-Booking-System/internal/db/mocks"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

func TestDeskRepoGetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mock_database.NewMockDB(ctrl)
	repo := NewDeskRepo(db)

	db.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*dest.(*[]*repository.Desk) = []*repository.Desk{
				{ID: 3, Label: "Desk 3", IsActive: true},
				{ID: 5, Label: "Desk 5", IsActive: true},
			}
			return nil
		})

	got, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestDeskRepoLockActiveTx(t *testing.T) {
	t.Run("locks and returns the desk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := mock_database.NewMockTx(ctrl)
		repo := NewDeskRepo(mock_database.NewMockDB(ctrl))

		tx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).
			DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "FOR UPDATE")
				d := dest.(*repository.Desk)
				d.ID = 3
				d.IsActive = true
				return nil
			})

		got, err := repo.LockActiveTx(context.Background(), tx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("inactive or missing desk is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := mock_database.NewMockTx(ctrl)
		repo := NewDeskRepo(mock_database.NewMockDB(ctrl))

		tx.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), int64(99)).
			Return(pgx.ErrNoRows)

		_, err := repo.LockActiveTx(context.Background(), tx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
