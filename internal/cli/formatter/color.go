package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/safeops/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style for a reminder severity.
func SeverityColor(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityDanger:
		return StyleRed
	case domain.SeverityWarning:
		return StyleYellow
	case domain.SeverityOK:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored indicator such as "● OVERDUE".
func SeverityIndicator(sev domain.Severity) string {
	switch sev {
	case domain.SeverityDanger:
		return StyleRed.Render("● DANGER")
	case domain.SeverityWarning:
		return StyleYellow.Render("● WARNING")
	case domain.SeverityOK:
		return StyleGreen.Render("● OK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ReviewStatusPill returns a colored pill for a tracked record's review status.
func ReviewStatusPill(status domain.ReviewStatus) string {
	switch status {
	case domain.ReviewOverdue:
		return StyleRed.Render("▲ " + status.Label())
	case domain.ReviewDueSoon:
		return StyleYellow.Render("● " + status.Label())
	case domain.ReviewCurrent:
		return StyleGreen.Render("✔ " + status.Label())
	default:
		return StyleDim.Render("○ " + status.Label())
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
