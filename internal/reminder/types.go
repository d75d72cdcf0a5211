package reminder

import (
	"time"

	"github.com/alexanderramin/safeops/internal/domain"
)

// NoChecklistRecords is the description used for equipment that has never
// been checked.
const NoChecklistRecords = "No checklist records found"

// Reminder is a derived notification about an upcoming or overdue date.
// It is rebuilt on every computation and never persisted.
type Reminder struct {
	Type        domain.ReminderType `json:"type"`
	Title       string              `json:"title"`
	DueDate     time.Time           `json:"due_date"`
	Description string              `json:"description"`
	Severity    domain.Severity     `json:"severity"`
	SourceID    string              `json:"source_id,omitempty"`
}

// TrackedItem is a record whose lifecycle is governed by one target date.
// Label prefixes the description and defaults to Name.
type TrackedItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Label      string `json:"label,omitempty"`
	TargetDate string `json:"target_date"`
}

// EquipmentItem carries the two independent due dates of an asset.
type EquipmentItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CalibrationDate string `json:"calibration_date,omitempty"`
	ServiceDate     string `json:"service_date,omitempty"`
}

// CheckEntity is anything that receives recurring checks (equipment).
type CheckEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CheckRecord is one completed check of an entity.
type CheckRecord struct {
	ID        string           `json:"id,omitempty"`
	EntityID  string           `json:"entity_id"`
	CheckDate string           `json:"check_date"`
	Frequency domain.Frequency `json:"frequency"`
}

// RecurringCheckItem pairs an entity with its most recent check.
// A nil LastCheck means the entity has no check history at all.
type RecurringCheckItem struct {
	EntityID   string
	EntityName string
	LastCheck  *CheckRecord
}

// Snapshot is the already-fetched input to a computation.
type Snapshot struct {
	Tracked       []TrackedItem   `json:"tracked"`
	Equipment     []EquipmentItem `json:"equipment"`
	CheckEntities []CheckEntity   `json:"check_entities"`
	Checks        []CheckRecord   `json:"checks"`
}

// Result is the output of Engine.Compute.
type Result struct {
	GeneratedAt       time.Time               `json:"generated_at"`
	Reminders         []Reminder              `json:"reminders"`
	OverdueChecklists int                     `json:"overdue_checklists"`
	Counts            map[domain.Severity]int `json:"counts"`
}
