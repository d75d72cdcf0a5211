package reminder

import (
	"sort"

	"github.com/alexanderramin/safeops/internal/domain"
)

// Aggregate concatenates reminder lists and sorts them by due date,
// earliest first. Equal due dates keep their input order.
func Aggregate(lists ...[]Reminder) []Reminder {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Reminder, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// CountBySeverityAndType counts reminders of one type at one severity.
func CountBySeverityAndType(reminders []Reminder, typ domain.ReminderType, sev domain.Severity) int {
	n := 0
	for _, r := range reminders {
		if r.Type == typ && r.Severity == sev {
			n++
		}
	}
	return n
}

// OverdueChecklistCount is the number shown on the overdue-checklists badge.
func OverdueChecklistCount(reminders []Reminder) int {
	return CountBySeverityAndType(reminders, domain.ReminderRecurring, domain.SeverityDanger)
}

// CountBySeverity tallies reminders per severity; warning and danger are always present.
func CountBySeverity(reminders []Reminder) map[domain.Severity]int {
	counts := map[domain.Severity]int{
		domain.SeverityWarning: 0,
		domain.SeverityDanger:  0,
	}
	for _, r := range reminders {
		counts[r.Severity]++
	}
	return counts
}

// Filter keeps reminders matching the optional type and at or above the
// minimum severity. Order is preserved.
func Filter(reminders []Reminder, typ domain.ReminderType, minSeverity domain.Severity) []Reminder {
	out := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if typ != "" && r.Type != typ {
			continue
		}
		if minSeverity != "" && r.Severity.Rank() < minSeverity.Rank() {
			continue
		}
		out = append(out, r)
	}
	return out
}
