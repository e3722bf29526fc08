package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type fakeDeskRepo struct {
	desks []*repository.Desk
	err   error
	calls int
}

func (f *fakeDeskRepo) GetActive(context.Context) ([]*repository.Desk, error) {
	f.calls++
	return f.desks, f.err
}

func TestDeskCacheRefresh(t *testing.T) {
	repo := &fakeDeskRepo{desks: []*repository.Desk{
		{ID: 5, Label: "Desk 5", IsActive: true},
		{ID: 3, Label: "Desk 3", IsActive: true},
	}}
	cache := NewDeskCache(repo, zap.NewNop())

	require.NoError(t, cache.LoadInitialData(context.Background()))

	got, err := cache.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(5), got[1].ID)
	assert.Equal(t, 1, repo.calls, "reads after refresh should not touch the store")

	desk, found := cache.Get(5)
	require.True(t, found)
	assert.Equal(t, "Desk 5", desk.Label)

	_, found = cache.Get(99)
	assert.False(t, found)
}

func TestDeskCacheRefreshError(t *testing.T) {
	repo := &fakeDeskRepo{err: errors.New("connection refused")}
	cache := NewDeskCache(repo, zap.NewNop())

	assert.Error(t, cache.Refresh(context.Background()))
}

func TestDeskCacheFallsThroughWhenEmpty(t *testing.T) {
	repo := &fakeDeskRepo{desks: []*repository.Desk{{ID: 1, IsActive: true}}}
	cache := NewDeskCache(repo, zap.NewNop())

	got, err := cache.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestDeskCacheReturnsCopies(t *testing.T) {
	repo := &fakeDeskRepo{desks: []*repository.Desk{{ID: 1, Label: "Desk 1", IsActive: true}}}
	cache := NewDeskCache(repo, zap.NewNop())
	require.NoError(t, cache.Refresh(context.Background()))

	got, err := cache.GetActive(context.Background())
	require.NoError(t, err)
	got[0].Label = "mutated"

	again, _ := cache.Get(1)
	assert.Equal(t, "Desk 1", again.Label)
}
