package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

type idName struct {
	id   string
	name string
}

// resolveID matches input against an exact ID, then a case-insensitive
// name, then a unique ID prefix.
func resolveID(what, input string, candidates []idName) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", what)
	}

	for _, c := range candidates {
		if c.id == input {
			return c.id, nil
		}
	}
	for _, c := range candidates {
		if strings.EqualFold(c.name, input) {
			return c.id, nil
		}
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c.id, input) {
			matches = append(matches, c.id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", what, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", what, input, len(matches))
	}
}

func resolveEquipmentID(ctx context.Context, app *App, input string) (string, error) {
	items, err := app.Equipment.List(ctx)
	if err != nil {
		return "", err
	}
	candidates := make([]idName, 0, len(items))
	for _, e := range items {
		candidates = append(candidates, idName{id: e.ID, name: e.Name})
	}
	return resolveID("equipment", input, candidates)
}

func resolveRecordID(ctx context.Context, app *App, input string) (string, error) {
	records, err := app.Records.List(ctx, "")
	if err != nil {
		return "", err
	}
	candidates := make([]idName, 0, len(records))
	for _, r := range records {
		candidates = append(candidates, idName{id: r.ID, name: r.DisplayName()})
	}
	return resolveID("record", input, candidates)
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(isoDate, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: use YYYY-MM-DD", flag, value)
	}
	return &t, nil
}
