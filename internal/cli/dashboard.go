package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/helioworks/fieldops/pkg/models"
)

// columnView is one rendered status column.
type columnView struct {
	label string
	rows  []string
}

type dashboardModel struct {
	width  int
	height int

	filters   []models.WorkType // cycle: "" (all) followed by registry keys
	filterIdx int

	columns []columnView
	loading bool
	err     error
}

// boardLoadedMsg carries a refreshed board view back to the model.
type boardLoadedMsg struct {
	columns []columnView
	err     error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("172")).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	headerPending    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	headerInProgress = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	headerCompleted  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newDashboardModel() dashboardModel {
	filters := []models.WorkType{""}
	if Registry != nil {
		filters = append(filters, Registry.Keys()...)
	}
	return dashboardModel{filters: filters, loading: true}
}

// loadBoard refreshes the board and derives the column rows for the given
// work-type filter.
func loadBoard(filter models.WorkType) tea.Cmd {
	return func() tea.Msg {
		if Board == nil {
			return boardLoadedMsg{err: fmt.Errorf("board not initialized")}
		}
		if err := Board.LoadTasks(context.Background()); err != nil {
			return boardLoadedMsg{err: err}
		}

		view := Board.Buckets(filter)
		return boardLoadedMsg{columns: []columnView{
			{label: "Pending", rows: taskRows(view.Pending)},
			{label: "In Progress", rows: taskRows(view.InProgress)},
			{label: "Completed", rows: taskRows(view.Completed)},
		}}
	}
}

func taskRows(tasks []*models.Task) []string {
	rows := make([]string, len(tasks))
	for i, t := range tasks {
		rows[i] = fmt.Sprintf("%s  %s", t.Reference, t.WorkType)
	}
	return rows
}

func (m dashboardModel) Init() tea.Cmd {
	return loadBoard(m.filters[m.filterIdx])
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadBoard(m.filters[m.filterIdx])
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(m.filters)
			m.loading = true
			return m, loadBoard(m.filters[m.filterIdx])
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case boardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.columns = msg.columns
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	filter := "all work types"
	if f := m.filters[m.filterIdx]; f != "" {
		filter = string(f)
	}
	out := titleStyle.Render("fieldops board") + "  " + helpStyle.Render(filter) + "\n\n"

	switch {
	case m.loading:
		out += "Loading tasks...\n"
	case m.err != nil:
		out += errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	default:
		headers := []lipgloss.Style{headerPending, headerInProgress, headerCompleted}
		rendered := make([]string, 0, len(m.columns))
		for i, col := range m.columns {
			body := headers[i].Render(fmt.Sprintf("%s (%d)", col.label, len(col.rows))) + "\n"
			if len(col.rows) == 0 {
				body += helpStyle.Render("(none)")
			}
			for _, row := range col.rows {
				body += row + "\n"
			}
			rendered = append(rendered, columnStyle.Render(body))
		}
		out += lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		out += "\n"
	}

	out += "\n" + helpStyle.Render("r: refresh • f: cycle work-type filter • q: quit")
	return out
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive status board",
	Long: `Open the interactive status board showing pending, in-progress, and
completed columns. Press f to cycle through work-type filters and r to
refresh from the server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
