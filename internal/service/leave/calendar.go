package leave

import (
	"time"
)

const dateLayout = "2006-01-02"

// HolidaySet is an exclusion set of calendar dates keyed "YYYY-MM-DD".
// Keying by formatted date, not time.Time, keeps comparisons free of
// location and clock components.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates []time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d.Format(dateLayout)] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(day time.Time) bool {
	_, ok := s[day.Format(dateLayout)]
	return ok
}

// WorkingDays counts the days in [start, end] inclusive that are neither
// Saturday/Sunday nor in the holiday set. A reversed range counts zero.
func WorkingDays(start, end time.Time, holidays HolidaySet) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if start.After(end) {
		return 0
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if holidays.Contains(day) {
			continue
		}
		count++
	}
	return count
}

// TenureYears returns full years of service, anniversary-aware: a partial
// year does not count until the join-date anniversary has passed.
func TenureYears(join, asOf time.Time) int {
	join = truncateToDate(join)
	asOf = truncateToDate(asOf)

	years := asOf.Year() - join.Year()
	anniversary := join.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// QuotaForTenure maps full years of service to the annual leave entitlement.
func QuotaForTenure(years int) int {
	switch {
	case years < 1:
		return 0
	case years < 5:
		return 12
	case years < 10:
		return 18
	default:
		return 24
	}
}

// AnnualQuota is the entitlement for an employee as of a given date. An
// unknown join date yields zero.
func AnnualQuota(join *time.Time, asOf time.Time) int {
	if join == nil {
		return 0
	}
	return QuotaForTenure(TenureYears(*join, asOf))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
