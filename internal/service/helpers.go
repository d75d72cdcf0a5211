package service

import (
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
)

const isoDate = "2006-01-02"

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(isoDate)
}

// buildSnapshot maps stored records to engine input. Every piece of
// equipment is a check entity, whether or not it has ever been checked.
func buildSnapshot(records []*domain.TrackedRecord, equipment []*domain.Equipment, checklists []*domain.Checklist) reminder.Snapshot {
	snap := reminder.Snapshot{
		Tracked:       make([]reminder.TrackedItem, 0, len(records)),
		Equipment:     make([]reminder.EquipmentItem, 0, len(equipment)),
		CheckEntities: make([]reminder.CheckEntity, 0, len(equipment)),
		Checks:        make([]reminder.CheckRecord, 0, len(checklists)),
	}
	for _, r := range records {
		snap.Tracked = append(snap.Tracked, reminder.TrackedItem{
			ID:         r.ID,
			Name:       r.DisplayName(),
			TargetDate: formatDate(r.TargetDate),
		})
	}
	for _, e := range equipment {
		snap.Equipment = append(snap.Equipment, reminder.EquipmentItem{
			ID:              e.ID,
			Name:            e.Name,
			CalibrationDate: formatDate(e.CalibrationDue),
			ServiceDate:     formatDate(e.ServiceDue),
		})
		snap.CheckEntities = append(snap.CheckEntities, reminder.CheckEntity{ID: e.ID, Name: e.Name})
	}
	for _, c := range checklists {
		snap.Checks = append(snap.Checks, reminder.CheckRecord{
			ID:        c.ID,
			EntityID:  c.EquipmentID,
			CheckDate: c.CheckDate.Format(isoDate),
			Frequency: c.Frequency,
		})
	}
	return snap
}
