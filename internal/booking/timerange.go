package booking

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeRange is a half-open window [Start, End) in minutes of day.
// End may be 1440 for a window that runs to midnight; windows never
// roll over into the next day.
type TimeRange struct {
	Start int
	End   int
}

func NewTimeRange(start, end int) (TimeRange, error) {
	if start < 0 || start >= minutesPerDay {
		return TimeRange{}, fmt.Errorf("%w: start time %d out of range", ErrValidation, start)
	}
	if end <= 0 || end > minutesPerDay {
		return TimeRange{}, fmt.Errorf("%w: end time %d out of range", ErrValidation, end)
	}
	if start >= end {
		return TimeRange{}, fmt.Errorf("%w: start %d must be before end %d", ErrValidation, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

func NewTimeRangeFromDuration(start, durationMinutes int) (TimeRange, error) {
	if durationMinutes <= 0 {
		return TimeRange{}, fmt.Errorf("%w: duration must be positive, got %d", ErrValidation, durationMinutes)
	}
	return NewTimeRange(start, start+durationMinutes)
}

// Overlaps reports whether the two windows intersect. Comparison is
// strict, so back-to-back windows do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r TimeRange) Duration() int {
	return r.End - r.Start
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", FormatMinutes(r.Start), FormatMinutes(r.End))
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into minutes of day. The whole
// string must be a clock time; trailing text is rejected, and seconds must
// be zero.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
		}
		if t.Second() != 0 {
			return 0, fmt.Errorf("%w: invalid time %q", ErrValidation, s)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
