package domain

import (
	"fmt"
	"strings"
)

// Severity drives colour-coding of reminders and review states.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Rank returns a sort priority (higher = more urgent).
func (s Severity) Rank() int {
	switch s {
	case SeverityDanger:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ParseSeverity accepts "ok", "warning" or "danger" in any case.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityOK:
		return SeverityOK, nil
	case SeverityWarning:
		return SeverityWarning, nil
	case SeverityDanger:
		return SeverityDanger, nil
	}
	return "", fmt.Errorf("invalid severity %q (expected ok, warning or danger)", s)
}

type ReminderType string

const (
	ReminderTracked   ReminderType = "tracked"
	ReminderRecurring ReminderType = "recurring"
)

// ParseReminderType accepts "tracked" or "recurring".
func ParseReminderType(s string) (ReminderType, error) {
	switch ReminderType(strings.ToLower(strings.TrimSpace(s))) {
	case ReminderTracked:
		return ReminderTracked, nil
	case ReminderRecurring:
		return ReminderRecurring, nil
	}
	return "", fmt.Errorf("invalid reminder type %q (expected tracked or recurring)", s)
}

// Frequency is the declared cadence of an equipment checklist.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// ParseFrequency normalises case and whitespace before validating.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid frequency %q (expected daily, weekly or monthly)", s)
	}
	return f, nil
}

// RecordKind identifies which register a tracked record belongs to.
type RecordKind string

const (
	KindRiskAssessment RecordKind = "risk_assessment"
	KindCPP            RecordKind = "cpp"
	KindFirstAidKit    RecordKind = "first_aid_kit"
)

// ValidRecordKinds is the canonical set of accepted record kind strings.
var ValidRecordKinds = map[string]bool{
	"risk_assessment": true, "cpp": true, "first_aid_kit": true,
}

// ParseRecordKind accepts the canonical names plus a few short aliases.
func ParseRecordKind(s string) (RecordKind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "ra", "risk", "risk-assessment":
		norm = string(KindRiskAssessment)
	case "first-aid", "first-aid-kit", "kit":
		norm = string(KindFirstAidKit)
	}
	if !ValidRecordKinds[norm] {
		return "", fmt.Errorf("invalid record kind %q (expected risk_assessment, cpp or first_aid_kit)", s)
	}
	return RecordKind(norm), nil
}

// DateLabel is the human name of the record's governing date.
func (k RecordKind) DateLabel() string {
	if k == KindFirstAidKit {
		return "Next inspection"
	}
	return "Review date"
}

// DisplayName returns a title-case name for headings.
func (k RecordKind) DisplayName() string {
	switch k {
	case KindRiskAssessment:
		return "Risk Assessment"
	case KindCPP:
		return "Construction Phase Plan"
	case KindFirstAidKit:
		return "First Aid Kit"
	default:
		return string(k)
	}
}

type ReviewStatus string

const (
	ReviewCurrent ReviewStatus = "current"
	ReviewDueSoon ReviewStatus = "review_due_soon"
	ReviewOverdue ReviewStatus = "review_overdue"
	ReviewNoDate  ReviewStatus = "no_review_date"
)

// Label returns the text shown in record listings.
func (r ReviewStatus) Label() string {
	switch r {
	case ReviewOverdue:
		return "Review Overdue"
	case ReviewDueSoon:
		return "Review Due Soon"
	case ReviewCurrent:
		return "Current"
	default:
		return "No Review Date"
	}
}
