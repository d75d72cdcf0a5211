package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
)

// FormatRecordList renders tracked records with their review status.
func FormatRecordList(views []app.RecordStatusView, dateLayout string) string {
	t := NewTable("ID", "KIND", "NAME", "DATE", "STATUS")
	for _, v := range views {
		name := v.Record.Name
		if v.Record.Reference != "" {
			name = fmt.Sprintf("%s %s", Bold(v.Record.Reference), name)
		}
		t.AddRow(
			TruncID(v.Record.ID),
			KindBadge(v.Record.Kind.DisplayName()),
			name,
			DateOrDash(v.Record.TargetDate, dateLayout),
			ReviewStatusPill(v.Status),
		)
	}
	return t.Render()
}

// FormatEquipmentList renders equipment with both due dates.
func FormatEquipmentList(items []*domain.Equipment, dateLayout string) string {
	t := NewTable("ID", "NAME", "SERIAL", "LOCATION", "CALIBRATION", "SERVICE")
	for _, e := range items {
		t.AddRow(
			TruncID(e.ID),
			Bold(e.Name),
			orDash(e.SerialNumber),
			orDash(e.Location),
			DateOrDash(e.CalibrationDue, dateLayout),
			DateOrDash(e.ServiceDue, dateLayout),
		)
	}
	return t.Render()
}

// FormatChecklistList renders checklist history. names maps equipment IDs
// to display names; unknown IDs fall back to the truncated ID.
func FormatChecklistList(checks []*domain.Checklist, names map[string]string, dateLayout string) string {
	t := NewTable("DATE", "EQUIPMENT", "FREQUENCY", "RESULT", "INSPECTOR")
	for _, c := range checks {
		eq, ok := names[c.EquipmentID]
		if !ok {
			eq = TruncID(c.EquipmentID)
		}
		result := StyleGreen.Render("✔ Passed")
		if !c.Passed {
			result = StyleRed.Render("✖ Failed")
		}
		t.AddRow(
			c.CheckDate.Format(dateLayout),
			eq,
			string(c.Frequency),
			result,
			orDash(c.Inspector),
		)
	}
	return t.Render()
}

// FormatTransferResult summarises an import or export.
func FormatTransferResult(verb string, r *app.TransferResult) string {
	parts := []string{
		Pluralize(r.Records, "record", "records"),
		Pluralize(r.Equipment, "equipment item", "equipment items"),
		Pluralize(r.Checklists, "checklist", "checklists"),
	}
	return fmt.Sprintf("%s %s\n", verb, strings.Join(parts, ", "))
}

func orDash(s string) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	return s
}
