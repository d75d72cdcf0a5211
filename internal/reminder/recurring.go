package reminder

import (
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
)

// RecurringCheckReminders flags entities whose next check is due within the
// recurring window or overdue. Entities with no check history are always
// flagged as danger, dated now.
func (e *Engine) RecurringCheckReminders(items []RecurringCheckItem) []Reminder {
	return e.recurringAt(items, e.clock())
}

func (e *Engine) recurringAt(items []RecurringCheckItem, now time.Time) []Reminder {
	out := make([]Reminder, 0)
	for _, it := range items {
		if it.LastCheck == nil {
			out = append(out, Reminder{
				Type:        domain.ReminderRecurring,
				Title:       it.EntityName,
				DueDate:     now,
				Description: NoChecklistRecords,
				Severity:    domain.SeverityDanger,
				SourceID:    it.EntityID,
			})
			continue
		}

		last, err := ParseDate(it.LastCheck.CheckDate)
		if err != nil {
			continue
		}
		freq, err := domain.ParseFrequency(string(it.LastCheck.Frequency))
		if err != nil {
			continue
		}
		next, _ := NextDueDate(last, freq)

		d := DaysBetween(next, now)
		if d > e.recurringWindow && d >= 0 {
			continue
		}

		r := Reminder{
			Type:        domain.ReminderRecurring,
			Title:       it.EntityName,
			DueDate:     next,
			Description: fmt.Sprintf("%s checklist due in %d days", freq, d),
			Severity:    domain.SeverityWarning,
			SourceID:    it.EntityID,
		}
		if d < 0 {
			r.Description = fmt.Sprintf("%s checklist overdue by %d days", freq, -d)
			r.Severity = domain.SeverityDanger
		}
		out = append(out, r)
	}
	return out
}

// PairRecurringChecks attaches the most recent check to each entity. Checks
// whose date does not parse are ignored when choosing; if none parse, the
// first check is kept so the entity is skipped downstream instead of being
// reported as having no records.
func PairRecurringChecks(entities []CheckEntity, checks []CheckRecord) []RecurringCheckItem {
	byEntity := make(map[string][]CheckRecord, len(entities))
	for _, c := range checks {
		byEntity[c.EntityID] = append(byEntity[c.EntityID], c)
	}

	items := make([]RecurringCheckItem, 0, len(entities))
	for _, ent := range entities {
		items = append(items, RecurringCheckItem{
			EntityID:   ent.ID,
			EntityName: ent.Name,
			LastCheck:  latestCheck(byEntity[ent.ID]),
		})
	}
	return items
}

func latestCheck(checks []CheckRecord) *CheckRecord {
	if len(checks) == 0 {
		return nil
	}
	best := -1
	var bestAt time.Time
	for i, c := range checks {
		t, err := ParseDate(c.CheckDate)
		if err != nil {
			continue
		}
		if best < 0 || t.After(bestAt) {
			best, bestAt = i, t
		}
	}
	if best < 0 {
		best = 0
	}
	c := checks[best]
	return &c
}
