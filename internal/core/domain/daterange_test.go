package domain_test

import (
	"testing"
	"time"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, in, out string) domain.DateRange {
	t.Helper()

	r, err := domain.ParseDateRange(in, out)
	require.NoError(t, err)

	return r
}

func TestNewDateRange_RejectsEmptyAndInvertedRanges(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := domain.NewDateRange(day, day)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = domain.NewDateRange(day, day.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = domain.NewDateRange(time.Time{}, day)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestNewDateRange_DropsTimeOfDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	out := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	r, err := domain.NewDateRange(in, out)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), r.CheckIn)
	assert.Equal(t, 2, r.Nights())
}

func TestParseDateRange_MalformedDate(t *testing.T) {
	_, err := domain.ParseDateRange("2025-13-01", "2025-12-03")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = domain.ParseDateRange("2025-03-01", "tomorrow")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestDateRange_Overlaps(t *testing.T) {
	first := mustRange(t, "2025-03-10", "2025-03-12")

	tests := []struct {
		name  string
		other domain.DateRange
		want  bool
	}{
		{"back to back after", mustRange(t, "2025-03-12", "2025-03-14"), false},
		{"back to back before", mustRange(t, "2025-03-08", "2025-03-10"), false},
		{"straddles checkout", mustRange(t, "2025-03-11", "2025-03-13"), true},
		{"contains", mustRange(t, "2025-03-01", "2025-03-31"), true},
		{"identical", first, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, first.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(first))
		})
	}
}

func TestDateRange_NightsBeyondDurationRange(t *testing.T) {
	r := mustRange(t, "2000-01-01", "2400-01-01")

	// 400 Gregorian years are exactly 146097 days
	assert.Equal(t, 146097, r.Nights())
}
