package testutil

import (
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/google/uuid"
)

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a midnight UTC date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Tracked record options
type RecordOption func(*domain.TrackedRecord)

func WithKind(k domain.RecordKind) RecordOption {
	return func(r *domain.TrackedRecord) {
		r.Kind = k
	}
}

func WithReference(ref string) RecordOption {
	return func(r *domain.TrackedRecord) {
		r.Reference = ref
	}
}

func WithReviewDate(d time.Time) RecordOption {
	return func(r *domain.TrackedRecord) {
		r.TargetDate = &d
	}
}

func WithRecordNotes(notes string) RecordOption {
	return func(r *domain.TrackedRecord) {
		r.Notes = notes
	}
}

func NewTestTrackedRecord(name string, opts ...RecordOption) *domain.TrackedRecord {
	now := time.Now().UTC().Truncate(time.Second)
	r := &domain.TrackedRecord{
		ID:        uuid.New().String(),
		Kind:      domain.KindRiskAssessment,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Equipment options
type EquipmentOption func(*domain.Equipment)

func WithCalibrationDue(d time.Time) EquipmentOption {
	return func(e *domain.Equipment) {
		e.CalibrationDue = &d
	}
}

func WithServiceDue(d time.Time) EquipmentOption {
	return func(e *domain.Equipment) {
		e.ServiceDue = &d
	}
}

func WithSerialNumber(sn string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.SerialNumber = sn
	}
}

func WithLocation(loc string) EquipmentOption {
	return func(e *domain.Equipment) {
		e.Location = loc
	}
}

func NewTestEquipment(name string, opts ...EquipmentOption) *domain.Equipment {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Equipment{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Checklist options
type ChecklistOption func(*domain.Checklist)

func WithFrequency(f domain.Frequency) ChecklistOption {
	return func(c *domain.Checklist) {
		c.Frequency = f
	}
}

func WithInspector(name string) ChecklistOption {
	return func(c *domain.Checklist) {
		c.Inspector = name
	}
}

func WithFailed() ChecklistOption {
	return func(c *domain.Checklist) {
		c.Passed = false
	}
}

func NewTestChecklist(equipmentID string, checkDate time.Time, opts ...ChecklistOption) *domain.Checklist {
	c := &domain.Checklist{
		ID:          uuid.New().String(),
		EquipmentID: equipmentID,
		CheckDate:   Day(checkDate),
		Frequency:   domain.FrequencyWeekly,
		Passed:      true,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
