//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=booking_mocks
package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

const EventsTopic = "booking_events"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

type DeskCatalog interface {
	GetActive(ctx context.Context) ([]*repository.Desk, error)
}

type DeskRepository interface {
	LockActiveTx(ctx context.Context, tx db.Tx, id int64) (*repository.Desk, error)
}

type UserRepository interface {
	LockTx(ctx context.Context, tx db.Tx, id int64) error
}

type BookingRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, booking *repository.Booking) error
	GetConflictingDeskIDs(ctx context.Context, date time.Time, start, end int) ([]int64, error)
	GetOverlapTx(ctx context.Context, tx db.Tx, deskID int64, date time.Time, start, end int) (*repository.Booking, error)
	GetActiveForUserTx(ctx context.Context, tx db.Tx, userID int64, today time.Time, nowMinutes int) (*repository.Booking, error)
	UpdateStatusIfConfirmedTx(ctx context.Context, tx db.Tx, userID, deskID int64, newStatus string) (*repository.Booking, error)
	CancelByIDTx(ctx context.Context, tx db.Tx, bookingID, userID int64) (*repository.Booking, error)
	GetByUserID(ctx context.Context, userID int64, activeOnly bool, today time.Time, nowMinutes int) ([]*repository.Booking, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// Service is the availability and reservation engine. All booking state
// lives in the store; the service itself is stateless and safe for
// concurrent use.
type Service struct {
	db       db.DB
	catalog  DeskCatalog
	desks    DeskRepository
	users    UserRepository
	bookings BookingRepository
	history  HistoryRepository
	outbox   OutboxRepository
	clock    Clock
	logger   *zap.Logger
}

func NewService(
	db db.DB,
	catalog DeskCatalog,
	desks DeskRepository,
	users UserRepository,
	bookings BookingRepository,
	history HistoryRepository,
	outbox OutboxRepository,
	clock Clock,
	logger *zap.Logger,
) *Service {
	if clock == nil {
		clock = RealClock{}
	}
	return &Service{
		db:       db,
		catalog:  catalog,
		desks:    desks,
		users:    users,
		bookings: bookings,
		history:  history,
		outbox:   outbox,
		clock:    clock,
		logger:   logger,
	}
}

// dateOf truncates an instant to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
