package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trainingdto "fitstat/internal/modules/training/dto"
	"fitstat/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ReportPort interface {
	Report(ctx context.Context, path string, skipInvalid, save bool) (trainingdto.ReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ReportLoadedMsg struct {
	Output trainingdto.ReportOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type summaryItem struct {
	summary trainingdto.SummaryOutput
}

func (i summaryItem) Title() string {
	return fmt.Sprintf("%d. %s", i.summary.Index+1, i.summary.TrainingType)
}

func (i summaryItem) Description() string {
	return fmt.Sprintf("%s  %.3f km  %.3f kcal", i.summary.Code, i.summary.DistanceKm, i.summary.Calories)
}

func (i summaryItem) FilterValue() string { return i.summary.TrainingType }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port        ReportPort
	path        string
	skipInvalid bool
	list        list.Model
	detail      viewport.Model
	spinner     spinner.Model
	skipped     []trainingdto.SkippedOutput
	err         error
	loading     bool
	width       int
	height      int
}

func New(port ReportPort, path string, skipInvalid bool) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Workouts"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:        port,
		path:        path,
		skipInvalid: skipInvalid,
		list:        l,
		detail:      vp,
		spinner:     sp,
		loading:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadReportCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ReportLoadedMsg:
		m.loading = false
		m.err = msg.Err
		m.skipped = msg.Output.Skipped
		items := make([]list.Item, len(msg.Output.Summaries))
		for i, s := range msg.Output.Summaries {
			items[i] = summaryItem{summary: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if !m.loading {
		var lCmd tea.Cmd
		prev, prevOK := m.SelectedSummary()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		// Filtering swaps the visible items without moving the cursor.
		if cur, ok := m.SelectedSummary(); ok != prevOK || cur.Index != prev.Index || cur.Code != prev.Code {
			m.detail.SetContent(m.renderDetail())
		}

		if _, typing := msg.(tea.KeyMsg); !typing || !m.Filtering() {
			var vCmd tea.Cmd
			m.detail, vCmd = m.detail.Update(msg)
			cmds = append(cmds, vCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Computing workouts…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := theme.Pane.
		Width(max(detailW-2, 0)).
		Height(max(m.height-2, 0)).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedSummary returns the highlighted workout, if any.
func (m Model) SelectedSummary() (trainingdto.SummaryOutput, bool) {
	if item, ok := m.list.SelectedItem().(summaryItem); ok {
		return item.summary, true
	}
	return trainingdto.SummaryOutput{}, false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Counts() (shown, skipped int) {
	return len(m.list.Items()), len(m.skipped)
}

func (m Model) Err() error {
	return m.err
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = max(detailW-4, 0)
	m.detail.Height = max(m.height-4, 0)
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	if m.err != nil {
		sb.WriteString(theme.Bad.Render("report stopped: "+m.err.Error()) + "\n\n")
	}
	s, ok := m.SelectedSummary()
	if !ok {
		sb.WriteString(theme.Muted.Render("No workouts to show"))
		return sb.String()
	}
	sb.WriteString(theme.Title.Render(s.TrainingType) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s%s\n", theme.Muted.Render("code:     "), s.Code))
	sb.WriteString(fmt.Sprintf("%s%.3f h\n", theme.Muted.Render("duration: "), s.DurationH))
	sb.WriteString(fmt.Sprintf("%s%.3f km\n", theme.Muted.Render("distance: "), s.DistanceKm))
	sb.WriteString(fmt.Sprintf("%s%.3f km/h\n", theme.Muted.Render("speed:    "), s.SpeedKmh))
	sb.WriteString(fmt.Sprintf("%s%s\n", theme.Muted.Render("calories: "), theme.Hot.Render(fmt.Sprintf("%.3f", s.Calories))))
	sb.WriteString("\n" + s.Message + "\n")
	if len(m.skipped) > 0 {
		sb.WriteString("\n" + theme.Bad.Render(fmt.Sprintf("%d package(s) skipped", len(m.skipped))) + "\n")
		for _, sk := range m.skipped {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("  #%d %s: %s", sk.Index+1, sk.Code, sk.Reason)) + "\n")
		}
	}
	return sb.String()
}

func (m Model) loadReportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Report(context.Background(), m.path, m.skipInvalid, false)
		return ReportLoadedMsg{Output: out, Err: err}
	}
}
