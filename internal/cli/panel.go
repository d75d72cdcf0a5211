package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/safeops/internal/app"
	"github.com/alexanderramin/safeops/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPanelCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "panel",
		Short: "Interactive reminder panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("panel needs an interactive terminal; use 'safeops reminders' instead")
			}
			_, err := tea.NewProgram(newPanelModel(a), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

// panelLoadedMsg carries a freshly computed reminder response.
type panelLoadedMsg struct {
	resp *app.RemindersResponse
	err  error
}

// ── model ────────────────────────────────────────────────────────────────────

// panelModel is a cursor list of reminders. Each row expands in place to
// show the full description; the footer carries the overdue checklist badge.
type panelModel struct {
	app      *App
	resp     *app.RemindersResponse
	loading  bool
	err      error
	cursor   int
	expanded map[int]bool
	help     help.Model
}

func newPanelModel(a *App) *panelModel {
	return &panelModel{
		app:      a,
		loading:  true,
		expanded: make(map[int]bool),
		help:     help.New(),
	}
}

func (m *panelModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *panelModel) Init() tea.Cmd {
	return m.load()
}

func (m *panelModel) load() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		resp, err := a.Reminders.GetReminders(context.Background(), buildRemindersRequest(a.now()))
		return panelLoadedMsg{resp: resp, err: err}
	}
}

func (m *panelModel) count() int {
	if m.resp == nil {
		return 0
	}
	return len(m.resp.Reminders)
}

func (m *panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case panelLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
			m.expanded = make(map[int]bool)
			if m.cursor >= m.count() {
				m.cursor = max(m.count()-1, 0)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.count()-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.cursor < m.count() {
				m.expanded[m.cursor] = !m.expanded[m.cursor]
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *panelModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Safety reminders"))
	b.WriteString("\n\n")

	switch {
	case m.loading && m.resp == nil:
		b.WriteString(formatter.Dim("Loading..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.count() == 0:
		b.WriteString(formatter.StyleGreen.Render("Nothing due. All records are current."))
		b.WriteString("\n")
	default:
		layout := m.app.dateLayout()
		for i, r := range m.resp.Reminders {
			pointer := "  "
			if i == m.cursor {
				pointer = formatter.StyleHeader.Render("❯ ")
			}
			line := fmt.Sprintf("%s%s  %s  %s", pointer,
				formatter.SeverityIndicator(r.Severity),
				formatter.Bold(r.Title),
				formatter.Dim(r.DueDate.Format(layout)))
			b.WriteString(line)
			b.WriteString("\n")
			if m.expanded[i] {
				b.WriteString(formatter.RenderBox("", formatter.FormatReminderDetail(r, layout)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	if m.resp != nil {
		b.WriteString(formatter.FormatBadge(m.resp.Summary.OverdueChecklists))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.shortHelp()))
	return b.String()
}
