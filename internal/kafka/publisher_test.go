package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	mock_database "github.com/Idowu-David/Nithub-Booking-System/internal/db/mocks"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type sentMessage struct {
	topic string
	key   []byte
	value []byte
}

type fakeProducer struct {
	sent    []sentMessage
	sendErr error
	closed  bool
}

func (f *fakeProducer) SendMessage(_ context.Context, topic string, key, value []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{topic: topic, key: key, value: value})
	return nil
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}

type statusUpdate struct {
	id       uuid.UUID
	status   repository.TaskStatus
	attempts int
	lastErr  *string
	done     *time.Time
}

type fakeOutboxRepo struct {
	tasks     []*repository.OutboxTask
	marked    []uuid.UUID
	fetchTx   db.Tx
	markTx    db.Tx
	updates   []statusUpdate
	fetchErr  error
	updateErr error
}

func (f *fakeOutboxRepo) GetProcessableTasks(_ context.Context, tx db.Tx, _ int) ([]*repository.OutboxTask, error) {
	f.fetchTx = tx
	return f.tasks, f.fetchErr
}

func (f *fakeOutboxRepo) UpdateTaskStatusTx(_ context.Context, tx db.Tx, id uuid.UUID, _ repository.TaskStatus, _ int, _ *string, _ *time.Time) error {
	f.markTx = tx
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeOutboxRepo) UpdateTaskStatus(_ context.Context, _ db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastErr *string, done *time.Time) error {
	f.updates = append(f.updates, statusUpdate{id: id, status: status, attempts: attempts, lastErr: lastErr, done: done})
	return f.updateErr
}

func newPublisherFixture(t *testing.T, repo *fakeOutboxRepo, producer *fakeProducer) (*Publisher, *mock_database.MockTx) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil).AnyTimes()
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil).AnyTimes()

	cfg := PublisherConfig{PollInterval: time.Second, BatchSize: 10, MaxAttempts: 3}
	return NewPublisher(mockDB, repo, producer, cfg, zap.NewNop()), mockTx
}

func TestPublisherProcessBatch(t *testing.T) {
	t.Run("publishes committed events and marks them done", func(t *testing.T) {
		taskID := uuid.New()
		repo := &fakeOutboxRepo{tasks: []*repository.OutboxTask{{
			ID:      taskID,
			Topic:   "booking_events",
			Payload: []byte(`{"event":"booking_confirmed"}`),
			Status:  repository.TaskStatusCreated,
		}}}
		producer := &fakeProducer{}
		pub, tx := newPublisherFixture(t, repo, producer)

		require.NoError(t, pub.processBatch(context.Background()))

		require.Len(t, producer.sent, 1)
		assert.Equal(t, "booking_events", producer.sent[0].topic)
		assert.Equal(t, []byte(taskID.String()), producer.sent[0].key)

		// Claim and PROCESSING update share one transaction, so the row
		// locks from SKIP LOCKED still hold when the tasks are marked.
		assert.Same(t, tx, repo.fetchTx)
		assert.Same(t, tx, repo.markTx)

		assert.Equal(t, []uuid.UUID{taskID}, repo.marked)
		require.Len(t, repo.updates, 1)
		assert.Equal(t, repository.TaskStatusDone, repo.updates[0].status)
		assert.NotNil(t, repo.updates[0].done)
	})

	t.Run("empty outbox is a no-op", func(t *testing.T) {
		repo := &fakeOutboxRepo{}
		producer := &fakeProducer{}
		pub, _ := newPublisherFixture(t, repo, producer)

		require.NoError(t, pub.processBatch(context.Background()))
		assert.Empty(t, producer.sent)
		assert.Empty(t, repo.updates)
	})

	t.Run("send failure records the error and bumps attempts", func(t *testing.T) {
		taskID := uuid.New()
		repo := &fakeOutboxRepo{tasks: []*repository.OutboxTask{{
			ID:       taskID,
			Topic:    "booking_events",
			Payload:  []byte(`{}`),
			Attempts: 1,
		}}}
		producer := &fakeProducer{sendErr: errors.New("broker unreachable")}
		pub, _ := newPublisherFixture(t, repo, producer)

		require.NoError(t, pub.processBatch(context.Background()))

		require.Len(t, repo.updates, 1)
		assert.Equal(t, repository.TaskStatusFailed, repo.updates[0].status)
		assert.Equal(t, 2, repo.updates[0].attempts)
		require.NotNil(t, repo.updates[0].lastErr)
		assert.Contains(t, *repo.updates[0].lastErr, "broker unreachable")
	})
}

func TestPublisherShutdownClosesProducer(t *testing.T) {
	producer := &fakeProducer{}
	pub, _ := newPublisherFixture(t, &fakeOutboxRepo{}, producer)

	pub.Shutdown()
	assert.True(t, producer.closed)
}
