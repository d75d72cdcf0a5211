package domain

import (
	"fmt"
	"strings"
	"time"
)

// TrackedRecord is any register entry governed by a single target date:
// a risk assessment or CPP review date, or a first-aid kit inspection date.
type TrackedRecord struct {
	ID         string
	Kind       RecordKind
	Name       string
	Reference  string
	TargetDate *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the fields every tracked record needs before persisting.
func (r *TrackedRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("record name is required")
	}
	if !ValidRecordKinds[string(r.Kind)] {
		return fmt.Errorf("invalid record kind %q", r.Kind)
	}
	return nil
}

// DisplayName prefers the reference code (e.g. RA-001) when set.
func (r *TrackedRecord) DisplayName() string {
	return CoalesceStr(r.Reference, r.Name)
}
