package timetable

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recorddto "studytrack/internal/modules/record/dto"
	"studytrack/internal/ui/theme"
)

type TimetablePort interface {
	Timetable(ctx context.Context, day string) ([]recorddto.TimetableEntryOutput, error)
}

type LoadedMsg struct {
	Entries []recorddto.TimetableEntryOutput
	Err     error
}

// Model shows the weekly timetable as a table in Monday..Sunday order.
type Model struct {
	port    TimetablePort
	table   table.Model
	entries []recorddto.TimetableEntryOutput
	err     error
	width   int
	height  int
}

var columns = []table.Column{
	{Title: "Day", Width: 10},
	{Title: "Time", Width: 6},
	{Title: "Subject", Width: 24},
	{Title: "Hours", Width: 6},
}

func New(port TimetablePort) Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(theme.Sapphire).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender).Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
	return Model{port: port, table: t}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return LoadedMsg{Err: fmt.Errorf("record store not configured")}
		}
		entries, err := port.Timetable(context.Background(), "")
		return LoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-4, 3))
		return m, nil

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			m.table.SetRows(Rows(msg.Entries))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Bad.Render("timetable: " + m.err.Error())
	}
	if len(m.entries) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("No timetable yet. Try :timetable:add Monday 09:00 Math 1.5"))
	}
	total := 0.0
	for _, e := range m.entries {
		total += e.DurationHours
	}
	footer := theme.Muted.Render(fmt.Sprintf("%d slots, %.1fh per week", len(m.entries), total))
	return theme.Pane.Render(m.table.View()) + "\n" + footer
}

// Rows renders entries as table rows. The day is shown only on the first
// slot of each day.
func Rows(entries []recorddto.TimetableEntryOutput) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	prev := ""
	for _, e := range entries {
		day := e.Day
		if day == prev {
			day = ""
		}
		prev = e.Day
		rows = append(rows, table.Row{day, e.Time, e.Subject, strconv.FormatFloat(e.DurationHours, 'f', -1, 64)})
	}
	return rows
}
