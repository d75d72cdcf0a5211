package transfer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
	"github.com/google/uuid"
)

// Converted holds domain objects ready for persistence.
type Converted struct {
	Records    []*domain.TrackedRecord
	Equipment  []*domain.Equipment
	Checklists []*domain.Checklist
}

// Convert turns a validated bundle into domain objects. Every ref is replaced
// by a fresh UUID and checklist equipment references are remapped, so the
// same bundle can be imported twice without collisions.
func Convert(b *Bundle, now time.Time) (*Converted, error) {
	now = now.UTC().Truncate(time.Second)
	out := &Converted{
		Records:    make([]*domain.TrackedRecord, 0, len(b.Records)),
		Equipment:  make([]*domain.Equipment, 0, len(b.Equipment)),
		Checklists: make([]*domain.Checklist, 0, len(b.Checklists)),
	}

	for _, r := range b.Records {
		kind, err := domain.ParseRecordKind(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", r.Ref, err)
		}
		out.Records = append(out.Records, &domain.TrackedRecord{
			ID:         uuid.New().String(),
			Kind:       kind,
			Name:       r.Name,
			Reference:  r.Reference,
			TargetDate: parseOptionalDate(r.TargetDate),
			Notes:      r.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	refMap := make(map[string]string, len(b.Equipment)) // ref -> UUID
	for _, e := range b.Equipment {
		id := uuid.New().String()
		refMap[e.Ref] = id
		out.Equipment = append(out.Equipment, &domain.Equipment{
			ID:             id,
			Name:           e.Name,
			SerialNumber:   e.SerialNumber,
			Location:       e.Location,
			CalibrationDue: parseOptionalDate(e.CalibrationDue),
			ServiceDue:     parseOptionalDate(e.ServiceDue),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	for _, c := range b.Checklists {
		eqID, ok := refMap[c.EquipmentRef]
		if !ok {
			return nil, fmt.Errorf("equipment_ref %q not found for checklist %q", c.EquipmentRef, c.Ref)
		}
		checkDate, err := reminder.ParseDate(c.CheckDate)
		if err != nil {
			return nil, fmt.Errorf("checklist %q check_date: %w", c.Ref, err)
		}
		freq, err := domain.ParseFrequency(c.Frequency)
		if err != nil {
			return nil, fmt.Errorf("checklist %q: %w", c.Ref, err)
		}
		out.Checklists = append(out.Checklists, &domain.Checklist{
			ID:          uuid.New().String(),
			EquipmentID: eqID,
			CheckDate:   truncateDay(checkDate),
			Frequency:   freq,
			Passed:      domain.BoolFromPtrWithDefault(true, c.Passed),
			Inspector:   c.Inspector,
			Notes:       c.Notes,
			CreatedAt:   now,
		})
	}

	return out, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := reminder.ParseDate(*s)
	if err != nil {
		return nil
	}
	t = truncateDay(t)
	return &t
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
