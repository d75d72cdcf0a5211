package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table accumulates rows and renders them aligned under a header line.
// Widths are measured on visible text so styled cells line up.
type Table struct {
	headers []string
	rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing trailing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}
	widths := t.widths()
	last := len(widths) - 1

	var b strings.Builder
	writeCell := func(i int, cell, styled string) {
		b.WriteString(styled)
		if i < last {
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range t.headers {
		writeCell(i, h, StyleHeader.Render(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range t.rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTable renders headers and rows in one call.
func RenderTable(headers []string, rows [][]string) string {
	t := NewTable(headers...)
	for _, r := range rows {
		t.AddRow(r...)
	}
	return t.Render()
}
