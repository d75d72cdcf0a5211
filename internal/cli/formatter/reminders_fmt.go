package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/alexanderramin/safeops/internal/reminder"
)

// FormatReminders renders the reminder list with a summary line.
func FormatReminders(resp *app.RemindersResponse, dateLayout string) string {
	var b strings.Builder

	b.WriteString(Header("Reminders"))
	b.WriteString("\n")
	b.WriteString(formatSummaryLine(resp.Summary))
	b.WriteString("\n\n")

	if len(resp.Reminders) == 0 {
		b.WriteString(StyleGreen.Render("Nothing due. All records are current."))
		b.WriteString("\n")
		return b.String()
	}

	t := NewTable("SEVERITY", "TYPE", "TITLE", "DUE", "WHEN", "DETAIL")
	for _, r := range resp.Reminders {
		t.AddRow(
			SeverityIndicator(r.Severity),
			Dim(string(r.Type)),
			Bold(r.Title),
			r.DueDate.Format(dateLayout),
			SeverityColor(r.Severity).Render(RelativeDateFrom(r.DueDate, resp.Summary.GeneratedAt)),
			r.Description,
		)
	}
	b.WriteString(t.Render())
	return b.String()
}

func formatSummaryLine(s app.RemindersSummary) string {
	parts := []string{
		StyleRed.Render(fmt.Sprintf("%d danger", s.Danger)),
		StyleYellow.Render(fmt.Sprintf("%d warning", s.Warning)),
	}
	line := strings.Join(parts, Dim(" · "))
	if s.OverdueChecklists > 0 {
		line += Dim(" · ") + StyleRed.Render(Pluralize(s.OverdueChecklists, "overdue checklist", "overdue checklists"))
	}
	return line
}

// FormatBadge renders the overdue checklist count as a one-line badge.
func FormatBadge(count int) string {
	if count == 0 {
		return StyleGreen.Render("✔ checklists up to date")
	}
	return StyleRed.Render(fmt.Sprintf("▲ %s", Pluralize(count, "overdue checklist", "overdue checklists")))
}

// FormatReminderDetail renders one reminder expanded, as in the panel.
func FormatReminderDetail(r reminder.Reminder, dateLayout string) string {
	lines := []string{
		fmt.Sprintf("%s  %s", SeverityIndicator(r.Severity), Bold(r.Title)),
		fmt.Sprintf("%s %s", Dim("Due:"), r.DueDate.Format(dateLayout)),
		fmt.Sprintf("%s %s", Dim("Type:"), reminderTypeLabel(r.Type)),
		r.Description,
	}
	if r.SourceID != "" {
		lines = append(lines, fmt.Sprintf("%s %s", Dim("Source:"), TruncID(r.SourceID)))
	}
	return strings.Join(lines, "\n")
}

func reminderTypeLabel(t domain.ReminderType) string {
	if t == domain.ReminderRecurring {
		return "Recurring checklist"
	}
	return "Tracked date"
}
