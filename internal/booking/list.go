package booking

import (
	"context"
	"fmt"

	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

// ListUserBookings returns the user's bookings, most recent first. With
// activeOnly only the live CONFIRMED booking (if any) is returned.
func (s *Service) ListUserBookings(ctx context.Context, userID int64, activeOnly bool) ([]*repository.Booking, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be a positive integer", ErrValidation)
	}

	now := s.clock.Now()
	bookings, err := s.bookings.GetByUserID(ctx, userID, activeOnly, dateOf(now), minutesOf(now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return bookings, nil
}
