package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		holidays []time.Time
		want     int
	}{
		{
			name:  "full week monday to sunday",
			start: date(2024, time.January, 1), // Monday
			end:   date(2024, time.January, 7), // Sunday
			want:  5,
		},
		{
			name:  "wednesday to friday",
			start: date(2024, time.January, 10),
			end:   date(2024, time.January, 12),
			want:  3,
		},
		{
			name:  "single day",
			start: date(2024, time.January, 10),
			end:   date(2024, time.January, 10),
			want:  1,
		},
		{
			name:  "single saturday",
			start: date(2024, time.January, 6),
			end:   date(2024, time.January, 6),
			want:  0,
		},
		{
			name:     "single day that is a holiday",
			start:    date(2024, time.January, 10),
			end:      date(2024, time.January, 10),
			holidays: []time.Time{date(2024, time.January, 10)},
			want:     0,
		},
		{
			name:     "holiday inside range",
			start:    date(2024, time.January, 8),
			end:      date(2024, time.January, 12),
			holidays: []time.Time{date(2024, time.January, 10)},
			want:     4,
		},
		{
			name:     "holiday on weekend does not double count",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 7),
			holidays: []time.Time{date(2024, time.January, 6)}, // Saturday
			want:     5,
		},
		{
			name:  "reversed range counts zero",
			start: date(2024, time.January, 12),
			end:   date(2024, time.January, 10),
			want:  0,
		},
		{
			name:  "range across month boundary",
			start: date(2024, time.January, 29), // Monday
			end:   date(2024, time.February, 2), // Friday
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkingDays(tt.start, tt.end, NewHolidaySet(tt.holidays))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkingDaysIgnoresClockComponents(t *testing.T) {
	start := time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 12, 0, 15, 0, 0, time.UTC)
	holiday := time.Date(2024, time.January, 11, 8, 0, 0, 0, time.UTC)

	got := WorkingDays(start, end, NewHolidaySet([]time.Time{holiday}))
	assert.Equal(t, 2, got)
}

func TestTenureYears(t *testing.T) {
	asOf := date(2024, time.June, 15)

	tests := []struct {
		name string
		join time.Time
		want int
	}{
		{"eleven months", date(2023, time.July, 15), 0},
		{"exactly one year", date(2023, time.June, 15), 1},
		{"day before anniversary", date(2023, time.June, 16), 0},
		{"six years", date(2018, time.June, 1), 6},
		{"eleven years", date(2013, time.January, 1), 11},
		{"join date in the future", date(2025, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TenureYears(tt.join, asOf))
		})
	}
}

func TestQuotaForTenure(t *testing.T) {
	tests := []struct {
		years int
		want  int
	}{
		{0, 0},
		{1, 12},
		{4, 12},
		{5, 18},
		{9, 18},
		{10, 24},
		{30, 24},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuotaForTenure(tt.years), "years=%d", tt.years)
	}
}

func TestAnnualQuota(t *testing.T) {
	asOf := date(2024, time.June, 15)

	t.Run("nil join date yields zero", func(t *testing.T) {
		assert.Equal(t, 0, AnnualQuota(nil, asOf))
	})

	t.Run("six year tenure", func(t *testing.T) {
		join := date(2018, time.June, 1)
		assert.Equal(t, 18, AnnualQuota(&join, asOf))
	})

	t.Run("eleven months yields zero", func(t *testing.T) {
		join := date(2023, time.July, 15)
		assert.Equal(t, 0, AnnualQuota(&join, asOf))
	})

	t.Run("eleven year tenure", func(t *testing.T) {
		join := date(2013, time.January, 1)
		assert.Equal(t, 24, AnnualQuota(&join, asOf))
	})
}
