package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

const (
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
)

type Desk struct {
	ID       int64  `db:"id"`
	Label    string `db:"label"`
	IsActive bool   `db:"is_active"`
}

// Booking stores the window as minutes of day, half-open [StartTime, EndTime).
type Booking struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	DeskID      int64     `db:"desk_id"`
	BookingDate time.Time `db:"booking_date"`
	StartTime   int       `db:"start_time"`
	EndTime     int       `db:"end_time"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type HistoryEntry struct {
	ID        int64     `db:"id"`
	BookingID int64     `db:"booking_id"`
	Status    string    `db:"status"`
	ChangedAt time.Time `db:"changed_at"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

type BookingEventPayload struct {
	Event       string    `json:"event"`
	BookingID   int64     `json:"booking_id"`
	UserID      int64     `json:"user_id"`
	DeskID      int64     `json:"desk_id"`
	BookingDate string    `json:"booking_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
