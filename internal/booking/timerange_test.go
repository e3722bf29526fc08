package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{name: "valid morning window", start: 540, end: 600},
		{name: "full day", start: 0, end: 1440},
		{name: "ends at midnight", start: 1380, end: 1440},
		{name: "start equals end", start: 600, end: 600, wantErr: true},
		{name: "start after end", start: 660, end: 600, wantErr: true},
		{name: "negative start", start: -10, end: 60, wantErr: true},
		{name: "start past midnight", start: 1440, end: 1500, wantErr: true},
		{name: "end past midnight", start: 1400, end: 1441, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng, err := NewTimeRange(tc.start, tc.end)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, rng.Start)
			assert.Equal(t, tc.end, rng.End)
		})
	}
}

func TestNewTimeRangeFromDuration(t *testing.T) {
	t.Run("derives end from duration", func(t *testing.T) {
		rng, err := NewTimeRangeFromDuration(540, 60)
		require.NoError(t, err)
		assert.Equal(t, 540, rng.Start)
		assert.Equal(t, 600, rng.End)
		assert.Equal(t, 60, rng.Duration())
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		_, err := NewTimeRangeFromDuration(540, -5)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("zero duration rejected", func(t *testing.T) {
		_, err := NewTimeRangeFromDuration(540, 0)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("no rollover past midnight", func(t *testing.T) {
		_, err := NewTimeRangeFromDuration(1410, 60)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestTimeRangeOverlaps(t *testing.T) {
	mustRange := func(start, end int) TimeRange {
		rng, err := NewTimeRange(start, end)
		require.NoError(t, err)
		return rng
	}

	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{name: "partial overlap", a: mustRange(540, 600), b: mustRange(570, 630), want: true},
		{name: "contained", a: mustRange(540, 720), b: mustRange(600, 660), want: true},
		{name: "identical", a: mustRange(540, 600), b: mustRange(540, 600), want: true},
		{name: "back to back do not overlap", a: mustRange(540, 600), b: mustRange(600, 660), want: false},
		{name: "disjoint", a: mustRange(540, 600), b: mustRange(720, 780), want: false},
		{name: "one minute shared", a: mustRange(540, 601), b: mustRange(600, 660), want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "09:00", want: 540},
		{input: "09:30", want: 570},
		{input: "00:00", want: 0},
		{input: "23:59", want: 1439},
		{input: "10:00:00", want: 600},
		{input: "24:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "10:00:30", wantErr: true},
		{input: "09:30xyz", wantErr: true},
		{input: "09:30 ", wantErr: true},
		{input: "garbage", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseClock(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:00", FormatMinutes(540))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "24:00", FormatMinutes(1440))
}
