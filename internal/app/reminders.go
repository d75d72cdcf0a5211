package app

import (
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
)

type RemindersRequest struct {
	// Now pins the evaluation instant; nil means the wall clock.
	Now         *time.Time
	Type        domain.ReminderType
	MinSeverity domain.Severity
}

func NewRemindersRequest() RemindersRequest {
	return RemindersRequest{}
}

type RemindersSummary struct {
	GeneratedAt       time.Time `json:"generated_at"`
	Total             int       `json:"total"`
	Danger            int       `json:"danger"`
	Warning           int       `json:"warning"`
	OverdueChecklists int       `json:"overdue_checklists"`
}

// RemindersResponse holds the filtered reminders. The summary is computed
// before filtering so the badge count never depends on the view.
type RemindersResponse struct {
	Summary   RemindersSummary    `json:"summary"`
	Reminders []reminder.Reminder `json:"reminders"`
}

type RecordStatusView struct {
	Record    *domain.TrackedRecord
	Status    domain.ReviewStatus
	DaysUntil *int
}

type RemindersErrorCode string

const (
	RemindersErrInvalidFilter RemindersErrorCode = "INVALID_FILTER"
)

type RemindersError struct {
	Code    RemindersErrorCode
	Message string
}

func (e *RemindersError) Error() string {
	return string(e.Code) + ": " + e.Message
}
