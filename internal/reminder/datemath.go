package reminder

import (
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
)

const day = 24 * time.Hour

var (
	// ErrMissingDate is returned for an empty date string.
	ErrMissingDate = errors.New("date is missing")
	// ErrInvalidDate is returned for a date string that does not parse.
	ErrInvalidDate = errors.New("date is not a valid ISO-8601 date")
)

// Date-only and zone-less values are read as UTC.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses an ISO-8601 date or timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DaysBetween returns floor((target - now) / 24h). No calendar awareness:
// the difference is plain elapsed time.
func DaysBetween(target, now time.Time) int {
	diff := target.Sub(now)
	days := diff / day
	if diff%day != 0 && diff < 0 {
		days--
	}
	return int(days)
}

// DaysUntil is DaysBetween on an ISO date string. A zero now means the
// current instant. The error must be checked before the value is used.
func DaysUntil(targetISO string, now time.Time) (int, error) {
	target, err := ParseDate(targetISO)
	if err != nil {
		return 0, err
	}
	if now.IsZero() {
		now = time.Now()
	}
	return DaysBetween(target, now), nil
}

// NextDueDate advances last by one frequency unit. Monthly uses calendar
// month arithmetic, so a day missing from the next month rolls forward
// (2024-01-31 becomes 2024-03-02).
func NextDueDate(last time.Time, freq domain.Frequency) (time.Time, bool) {
	switch freq {
	case domain.FrequencyDaily:
		return last.AddDate(0, 0, 1), true
	case domain.FrequencyWeekly:
		return last.AddDate(0, 0, 7), true
	case domain.FrequencyMonthly:
		return last.AddDate(0, 1, 0), true
	}
	return time.Time{}, false
}
