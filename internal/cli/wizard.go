package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func safeopsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(isoDate, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// recordFormValues is bound to the fields of the record form.
type recordFormValues struct {
	Kind      string
	Name      string
	Reference string
	Date      string
	Notes     string
}

func recordForm(v *recordFormValues) *huh.Form {
	if v.Kind == "" {
		v.Kind = string(domain.KindRiskAssessment)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Record Kind").
				Options(
					huh.NewOption(domain.KindRiskAssessment.DisplayName(), string(domain.KindRiskAssessment)),
					huh.NewOption(domain.KindCPP.DisplayName(), string(domain.KindCPP)),
					huh.NewOption(domain.KindFirstAidKit.DisplayName(), string(domain.KindFirstAidKit)),
				).
				Value(&v.Kind),
			huh.NewInput().Title("Name").Value(&v.Name).Validate(validateRequired("name")),
			huh.NewInput().Title("Reference (optional)").Placeholder("RA-001").Value(&v.Reference),
			dateInput("Review / inspection date (YYYY-MM-DD, blank for none)", &v.Date),
			huh.NewInput().Title("Notes (optional)").Value(&v.Notes),
		),
	).WithTheme(safeopsHuhTheme()).WithShowHelp(false)
}

type equipmentFormValues struct {
	Name        string
	Serial      string
	Location    string
	Calibration string
	Service     string
}

func equipmentForm(v *equipmentFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.Name).Validate(validateRequired("name")),
			huh.NewInput().Title("Serial number (optional)").Value(&v.Serial),
			huh.NewInput().Title("Location (optional)").Value(&v.Location),
		),
		huh.NewGroup(
			dateInput("Calibration due (YYYY-MM-DD, blank for none)", &v.Calibration),
			dateInput("Service due (YYYY-MM-DD, blank for none)", &v.Service),
		),
	).WithTheme(safeopsHuhTheme()).WithShowHelp(false)
}

type checklistFormValues struct {
	EquipmentID string
	Date        string
	Frequency   string
	Passed      bool
	Inspector   string
	Notes       string
}

// checklistForm offers every piece of equipment in a select. It fails when
// there is nothing to check.
func checklistForm(ctx context.Context, app *App, v *checklistFormValues) (*huh.Form, error) {
	items, err := app.Equipment.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no equipment found; add some with 'safeops equipment add'")
	}

	opts := make([]huh.Option[string], 0, len(items))
	for _, e := range items {
		opts = append(opts, huh.NewOption(e.Name, e.ID))
	}
	if v.Frequency == "" {
		v.Frequency = string(domain.FrequencyWeekly)
	}
	v.Passed = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Equipment").Options(opts...).Value(&v.EquipmentID),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(domain.FrequencyDaily)),
					huh.NewOption("Weekly", string(domain.FrequencyWeekly)),
					huh.NewOption("Monthly", string(domain.FrequencyMonthly)),
				).
				Value(&v.Frequency),
		),
		huh.NewGroup(
			dateInput("Check date (YYYY-MM-DD, blank for today)", &v.Date),
			huh.NewConfirm().Title("Passed?").Affirmative("Yes").Negative("No").Value(&v.Passed),
			huh.NewInput().Title("Inspector (optional)").Value(&v.Inspector),
			huh.NewInput().Title("Notes (optional)").Value(&v.Notes),
		),
	).WithTheme(safeopsHuhTheme()).WithShowHelp(false), nil
}
