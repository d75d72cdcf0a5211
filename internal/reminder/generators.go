package reminder

import (
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
)

// TrackedItemReminders emits a reminder for every item due within the
// tracked window or already overdue. Overdue items never drop off.
func (e *Engine) TrackedItemReminders(items []TrackedItem) []Reminder {
	return e.trackedAt(items, e.clock())
}

// EquipmentReminders checks the calibration and service dates of each item
// independently. It uses the tracked window but the equipment thresholds,
// so anything due within 7 days is already danger.
func (e *Engine) EquipmentReminders(items []EquipmentItem) []Reminder {
	return e.equipmentAt(items, e.clock())
}

func (e *Engine) trackedAt(items []TrackedItem, now time.Time) []Reminder {
	out := make([]Reminder, 0)
	for _, it := range items {
		label := domain.CoalesceStr(it.Label, it.Name)
		if r, ok := e.dateReminder(it.ID, it.Name, label, it.TargetDate, ReviewThresholds, now); ok {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) equipmentAt(items []EquipmentItem, now time.Time) []Reminder {
	out := make([]Reminder, 0)
	for _, it := range items {
		if r, ok := e.dateReminder(it.ID, it.Name, "Calibration", it.CalibrationDate, EquipmentThresholds, now); ok {
			out = append(out, r)
		}
		if r, ok := e.dateReminder(it.ID, it.Name, "Service", it.ServiceDate, EquipmentThresholds, now); ok {
			out = append(out, r)
		}
	}
	return out
}

// dateReminder skips missing and malformed dates, and dates the thresholds
// rate ok even when they fall inside the window.
func (e *Engine) dateReminder(id, title, label, targetISO string, t Thresholds, now time.Time) (Reminder, bool) {
	target, err := ParseDate(targetISO)
	if err != nil {
		return Reminder{}, false
	}
	d := DaysBetween(target, now)
	if d > e.trackedWindow && d >= 0 {
		return Reminder{}, false
	}
	sev := Classify(d, t)
	if sev == domain.SeverityOK {
		return Reminder{}, false
	}

	desc := fmt.Sprintf("%s due in %d days", label, d)
	if d < 0 {
		desc = fmt.Sprintf("%s expired - %s", label, target.Format(e.dateLayout))
	}

	return Reminder{
		Type:        domain.ReminderTracked,
		Title:       title,
		DueDate:     target,
		Description: desc,
		Severity:    sev,
		SourceID:    id,
	}, true
}
