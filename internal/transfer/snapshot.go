package transfer

import (
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
)

const isoDate = "2006-01-02"

// FromDomain builds an export bundle. Refs are the store IDs.
func FromDomain(records []*domain.TrackedRecord, equipment []*domain.Equipment, checklists []*domain.Checklist, exportedAt time.Time) *Bundle {
	b := &Bundle{
		Version:    BundleVersion,
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Records:    make([]RecordImport, 0, len(records)),
		Equipment:  make([]EquipmentImport, 0, len(equipment)),
		Checklists: make([]ChecklistImport, 0, len(checklists)),
	}
	for _, r := range records {
		b.Records = append(b.Records, RecordImport{
			Ref:        r.ID,
			Kind:       string(r.Kind),
			Name:       r.Name,
			Reference:  r.Reference,
			TargetDate: formatOptionalDate(r.TargetDate),
			Notes:      r.Notes,
		})
	}
	for _, e := range equipment {
		b.Equipment = append(b.Equipment, EquipmentImport{
			Ref:            e.ID,
			Name:           e.Name,
			SerialNumber:   e.SerialNumber,
			Location:       e.Location,
			CalibrationDue: formatOptionalDate(e.CalibrationDue),
			ServiceDue:     formatOptionalDate(e.ServiceDue),
		})
	}
	for _, c := range checklists {
		passed := c.Passed
		b.Checklists = append(b.Checklists, ChecklistImport{
			Ref:          c.ID,
			EquipmentRef: c.EquipmentID,
			CheckDate:    c.CheckDate.Format(isoDate),
			Frequency:    string(c.Frequency),
			Passed:       &passed,
			Inspector:    c.Inspector,
			Notes:        c.Notes,
		})
	}
	return b
}

// SnapshotFromBundle maps a bundle straight to engine input without
// validating it. Malformed dates pass through and are skipped by the engine.
func SnapshotFromBundle(b *Bundle) reminder.Snapshot {
	snap := reminder.Snapshot{
		Tracked:       make([]reminder.TrackedItem, 0, len(b.Records)),
		Equipment:     make([]reminder.EquipmentItem, 0, len(b.Equipment)),
		CheckEntities: make([]reminder.CheckEntity, 0, len(b.Equipment)),
		Checks:        make([]reminder.CheckRecord, 0, len(b.Checklists)),
	}
	for _, r := range b.Records {
		snap.Tracked = append(snap.Tracked, reminder.TrackedItem{
			ID:         r.Ref,
			Name:       domain.CoalesceStr(r.Reference, r.Name),
			TargetDate: derefStr(r.TargetDate),
		})
	}
	for _, e := range b.Equipment {
		snap.Equipment = append(snap.Equipment, reminder.EquipmentItem{
			ID:              e.Ref,
			Name:            e.Name,
			CalibrationDate: derefStr(e.CalibrationDue),
			ServiceDate:     derefStr(e.ServiceDue),
		})
		snap.CheckEntities = append(snap.CheckEntities, reminder.CheckEntity{ID: e.Ref, Name: e.Name})
	}
	for _, c := range b.Checklists {
		snap.Checks = append(snap.Checks, reminder.CheckRecord{
			ID:        c.Ref,
			EntityID:  c.EquipmentRef,
			CheckDate: c.CheckDate,
			Frequency: domain.Frequency(c.Frequency),
		})
	}
	return snap
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(isoDate)
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
