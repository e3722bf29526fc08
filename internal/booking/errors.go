package booking

import (
	"errors"
	"fmt"

	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

var (
	// ErrValidation marks malformed input, rejected before any store access.
	ErrValidation = errors.New("invalid input")

	// ErrSlotConflict means the desk is already taken for an overlapping
	// window, including races resolved at commit time.
	ErrSlotConflict = errors.New("slot already taken")

	// ErrNotFound means no booking exists in the expected state.
	ErrNotFound = errors.New("booking not found")

	// ErrStoreUnavailable wraps infrastructure failures. The whole
	// operation is safe to retry, nothing partial is ever committed.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ActiveBookingError rejects a create when the user already holds a live
// CONFIRMED booking. It carries the conflicting booking so the caller can
// offer cancel-then-rebook.
type ActiveBookingError struct {
	Booking *repository.Booking
}

func (e *ActiveBookingError) Error() string {
	return fmt.Sprintf("user %d already has an active booking %d on desk %d",
		e.Booking.UserID, e.Booking.ID, e.Booking.DeskID)
}
