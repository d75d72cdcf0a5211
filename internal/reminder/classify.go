package reminder

import (
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
)

// Thresholds are inclusive upper bounds on days-until for each severity.
type Thresholds struct {
	DangerAtOrBelow  int
	WarningAtOrBelow int
}

var (
	// ReviewThresholds apply to risk assessments, CPPs and first-aid kits:
	// only overdue is danger, due within 30 days is a warning.
	ReviewThresholds = Thresholds{DangerAtOrBelow: -1, WarningAtOrBelow: 30}

	// EquipmentThresholds apply to calibration, service and checklist
	// recurrence: due within 7 days is already danger.
	EquipmentThresholds = Thresholds{DangerAtOrBelow: 7, WarningAtOrBelow: 30}
)

// Classify maps a day difference to a severity. Negative values are always
// danger regardless of thresholds.
func Classify(daysUntil int, t Thresholds) domain.Severity {
	switch {
	case daysUntil < 0:
		return domain.SeverityDanger
	case daysUntil <= t.DangerAtOrBelow:
		return domain.SeverityDanger
	case daysUntil <= t.WarningAtOrBelow:
		return domain.SeverityWarning
	default:
		return domain.SeverityOK
	}
}

// ReviewStatusOf derives the review status shown next to risk assessments,
// CPPs and first-aid kits.
func ReviewStatusOf(targetISO string, now time.Time) domain.ReviewStatus {
	d, err := DaysUntil(targetISO, now)
	if err != nil {
		return domain.ReviewNoDate
	}
	switch Classify(d, ReviewThresholds) {
	case domain.SeverityDanger:
		return domain.ReviewOverdue
	case domain.SeverityWarning:
		return domain.ReviewDueSoon
	default:
		return domain.ReviewCurrent
	}
}
