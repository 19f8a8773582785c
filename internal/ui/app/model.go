package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitstat/internal/ui/theme"
	reportview "fitstat/internal/ui/views/report"
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Find key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Find: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Find},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: a header, the report view, a status
// line and the help footer.
type Model struct {
	report   reportview.Model
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	failed   bool
	width    int
	height   int
}

func NewModel(port reportview.ReportPort, packagesPath string, skipInvalid bool) Model {
	return Model{
		report: reportview.New(port, packagesPath, skipInvalid),
		keys:   defaultKeys(),
		help:   help.New(),
		status: "computing",
	}
}

func (m Model) Init() tea.Cmd {
	return m.report.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()})
		return m, cmd

	case tea.KeyMsg:
		if !m.report.Filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				m.help.ShowAll = m.showHelp
				var cmd tea.Cmd
				m.report, cmd = m.report.Update(tea.WindowSizeMsg{Width: m.width, Height: m.bodyHeight()})
				return m, cmd
			}
		}

	case reportview.ReportLoadedMsg:
		m.status = statusLine(msg)
		m.failed = msg.Err != nil
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("fitstat") + "  " + theme.Muted.Render("workout summaries")
	status := theme.Good.Render(m.status)
	if m.failed {
		status = theme.Bad.Render(m.status)
	}
	footer := status + "\n" + m.help.View(m.keys)
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.report.View(), footer))
}

// Status returns the text shown above the help footer.
func (m Model) Status() string {
	return m.status
}

func (m Model) bodyHeight() int {
	footer := 2
	if m.showHelp {
		footer = 4
	}
	return max(m.height-1-footer, 0)
}

func statusLine(msg reportview.ReportLoadedMsg) string {
	shown := len(msg.Output.Summaries)
	skipped := len(msg.Output.Skipped)
	if msg.Err != nil {
		return fmt.Sprintf("%d workout(s); stopped: %v", shown, msg.Err)
	}
	if skipped > 0 {
		return fmt.Sprintf("%d workout(s), %d skipped", shown, skipped)
	}
	return fmt.Sprintf("%d workout(s)", shown)
}
