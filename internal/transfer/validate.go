package transfer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
)

// Validate checks a bundle before conversion and returns every problem found.
func Validate(b *Bundle) []error {
	var errs []error

	if b.Version > BundleVersion {
		errs = append(errs, fmt.Errorf("bundle version %d is newer than supported version %d", b.Version, BundleVersion))
	}

	errs = append(errs, validateRecords(b.Records)...)

	eqRefs := make(map[string]bool, len(b.Equipment))
	errs = append(errs, validateEquipment(b.Equipment, eqRefs)...)
	errs = append(errs, validateChecklists(b.Checklists, eqRefs)...)

	return errs
}

func validateRecords(records []RecordImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, r := range records {
		where := fmt.Sprintf("records[%d]", i)
		errs = append(errs, checkRef(where, r.Ref, seen)...)
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", where))
		}
		if _, err := domain.ParseRecordKind(r.Kind); err != nil {
			errs = append(errs, fmt.Errorf("%s.kind: %w", where, err))
		}
		errs = append(errs, checkOptionalDate(where+".target_date", r.TargetDate)...)
	}
	return errs
}

func validateEquipment(items []EquipmentImport, refs map[string]bool) []error {
	var errs []error
	for i, e := range items {
		where := fmt.Sprintf("equipment[%d]", i)
		errs = append(errs, checkRef(where, e.Ref, refs)...)
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", where))
		}
		errs = append(errs, checkOptionalDate(where+".calibration_due", e.CalibrationDue)...)
		errs = append(errs, checkOptionalDate(where+".service_due", e.ServiceDue)...)
	}
	return errs
}

func validateChecklists(items []ChecklistImport, eqRefs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, c := range items {
		where := fmt.Sprintf("checklists[%d]", i)
		errs = append(errs, checkRef(where, c.Ref, seen)...)
		if c.EquipmentRef == "" {
			errs = append(errs, fmt.Errorf("%s.equipment_ref is required", where))
		} else if !eqRefs[c.EquipmentRef] {
			errs = append(errs, fmt.Errorf("%s.equipment_ref %q does not match any equipment", where, c.EquipmentRef))
		}
		if _, err := reminder.ParseDate(c.CheckDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.check_date %q: %w", where, c.CheckDate, err))
		}
		if _, err := domain.ParseFrequency(c.Frequency); err != nil {
			errs = append(errs, fmt.Errorf("%s.frequency: %w", where, err))
		}
	}
	return errs
}

func checkRef(where, ref string, seen map[string]bool) []error {
	if ref == "" {
		return []error{fmt.Errorf("%s.ref is required", where)}
	}
	if seen[ref] {
		return []error{fmt.Errorf("%s.ref %q is duplicated", where, ref)}
	}
	seen[ref] = true
	return nil
}

func checkOptionalDate(field string, s *string) []error {
	if s == nil || *s == "" {
		return nil
	}
	if _, err := reminder.ParseDate(*s); err != nil {
		return []error{fmt.Errorf("%s %q: %w", field, *s, err)}
	}
	return nil
}

// ValidationError aggregates the problems reported by Validate.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(e.Problems))
	for _, p := range e.Problems {
		msg += "\n  - " + p.Error()
	}
	return msg
}
