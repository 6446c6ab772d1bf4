package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar format used by rate observation files.
const DateLayout = "2006-01-02"

// MonthsBetween counts calendar months from one date to another, ignoring days.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// ParseDate parses YYYY-MM-DD into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// YearsToMonths converts a whole number of years into payment months.
func YearsToMonths(years int) int {
	return years * 12
}

// MonthsToYears expresses a month count in fractional years.
func MonthsToYears(months int) float64 {
	return float64(months) / 12
}

// YearOfMonth returns the 1-based loan year a 1-based payment month falls in.
func YearOfMonth(month int) int {
	if month <= 0 {
		return 0
	}
	return (month-1)/12 + 1
}

// IsAnniversary reports whether month m closes a full year (m > 0, m % 12 == 0).
func IsAnniversary(m int) bool {
	return m > 0 && m%12 == 0
}
