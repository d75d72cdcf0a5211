package domain

import (
	"fmt"
	"time"
)

// Checklist is one completed periodic check of a piece of equipment.
type Checklist struct {
	ID          string
	EquipmentID string
	CheckDate   time.Time
	Frequency   Frequency
	Passed      bool
	Inspector   string
	Notes       string
	CreatedAt   time.Time
}

func (c *Checklist) Validate() error {
	if c.EquipmentID == "" {
		return fmt.Errorf("checklist equipment id is required")
	}
	if c.CheckDate.IsZero() {
		return fmt.Errorf("checklist check date is required")
	}
	if !c.Frequency.Valid() {
		return fmt.Errorf("invalid checklist frequency %q", c.Frequency)
	}
	return nil
}
