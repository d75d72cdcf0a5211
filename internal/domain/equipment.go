package domain

import (
	"fmt"
	"strings"
	"time"
)

// Equipment is an inspected asset with independent calibration and service
// due dates. Its periodic checks are recorded as Checklists.
type Equipment struct {
	ID             string
	Name           string
	SerialNumber   string
	Location       string
	CalibrationDue *time.Time
	ServiceDue     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e *Equipment) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("equipment name is required")
	}
	return nil
}
