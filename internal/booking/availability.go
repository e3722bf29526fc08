package booking

import (
	"context"
	"fmt"
	"time"
)

type DeskAvailability struct {
	DeskID    int64  `json:"desk_id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// ListAvailability reports, for every active desk ordered by id, whether it
// is free for the window on the given date. Without a window every active
// desk is available. This read is deliberately unlocked: a booking attempt
// that follows is re-validated inside its own transaction, so transient
// staleness here cannot break the no-double-booking invariant.
func (s *Service) ListAvailability(ctx context.Context, date time.Time, window *TimeRange) ([]DeskAvailability, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	desks, err := s.catalog.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	result := make([]DeskAvailability, 0, len(desks))

	if window == nil {
		for _, d := range desks {
			result = append(result, DeskAvailability{DeskID: d.ID, Label: d.Label, Available: true})
		}
		return result, nil
	}

	takenIDs, err := s.bookings.GetConflictingDeskIDs(ctx, dateOf(date), window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	taken := make(map[int64]struct{}, len(takenIDs))
	for _, id := range takenIDs {
		taken[id] = struct{}{}
	}

	for _, d := range desks {
		_, conflicted := taken[d.ID]
		result = append(result, DeskAvailability{DeskID: d.ID, Label: d.Label, Available: !conflicted})
	}
	return result, nil
}
