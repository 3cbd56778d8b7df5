package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recorddto "studytrack/internal/modules/record/dto"
	"studytrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DashboardPort interface {
	Dashboard(ctx context.Context) (recorddto.DashboardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Dashboard recorddto.DashboardOutput
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    DashboardPort
	data    recorddto.DashboardOutput
	err     error
	body    viewport.Model
	bar     progress.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port DashboardPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		body:    vp,
		bar:     progress.New(progress.WithSolidFill(string(theme.Green))),
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh reloads the dashboard from the record store.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{Err: fmt.Errorf("record store not configured")}
		}
		d, err := m.port.Dashboard(context.Background())
		return LoadedMsg{Dashboard: d, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width - 2
		m.body.Height = msg.Height - 2
		m.bar.Width = min(msg.Width/2, 48)
		m.body.SetContent(m.render())

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.data = msg.Dashboard
		}
		m.body.SetContent(m.render())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	}
	return m.body.View()
}

// Greeting returns the encouragement line of the last load. It stays empty
// until at least one assignment is completed.
func (m Model) Greeting() string {
	if m.data.Analytics.CompletedAssignments == 0 {
		return ""
	}
	return m.data.Encouragement
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) render() string {
	if m.err != nil {
		return theme.Bad.Render("dashboard: " + m.err.Error())
	}
	d := m.data
	a := d.Analytics
	var sb strings.Builder

	if greeting := m.Greeting(); greeting != "" {
		sb.WriteString(theme.Hot.Render(greeting) + "\n\n")
	}

	sb.WriteString(theme.Title.Render("Progress") + "\n")
	sb.WriteString(fmt.Sprintf("%s%.1fh   %s%d   %s%d days\n",
		theme.Muted.Render("studied "), a.TotalStudyHours,
		theme.Muted.Render("streak "), a.CurrentStreak,
		theme.Muted.Render("consecutive "), a.ConsecutiveDays))
	sb.WriteString(fmt.Sprintf("%s%d/%d completed  %s%.1f\n",
		theme.Muted.Render("assignments "), a.CompletedAssignments, a.TotalAssignments,
		theme.Muted.Render("avg score "), a.AvgScore))
	done := 0.0
	if a.TotalAssignments > 0 {
		done = float64(a.CompletedAssignments) / float64(a.TotalAssignments)
	}
	sb.WriteString(m.bar.ViewAs(done) + "\n")
	sb.WriteString(fmt.Sprintf("%s%d/%d completed  %s%d\n\n",
		theme.Muted.Render("works "), a.CompletedWorks, a.TotalWorks,
		theme.Muted.Render("projects "), a.TotalProjects))

	if len(a.SubjectWiseHours) > 0 {
		sb.WriteString(theme.Title.Render("Hours by subject") + "\n")
		for _, subject := range byHours(a.SubjectWiseHours) {
			sb.WriteString(fmt.Sprintf("  %-16s %5.1fh\n", subject, a.SubjectWiseHours[subject]))
		}
		sb.WriteString("\n")
	}

	if len(a.DailyStudy) > 0 {
		sb.WriteString(theme.Title.Render("Daily study") + "\n")
		days := byDate(a.DailyStudy)
		peak := 0.0
		for _, day := range days {
			peak = max(peak, a.DailyStudy[day])
		}
		for _, day := range days {
			hours := a.DailyStudy[day]
			sb.WriteString(fmt.Sprintf("  %s %s %.1fh\n", theme.Muted.Render(day), dayBar(hours, peak), hours))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Title.Render("Suggestions") + "\n")
	if len(d.Suggestions) == 0 {
		sb.WriteString(theme.Muted.Render("  nothing to suggest") + "\n")
	}
	for _, s := range d.Suggestions {
		sb.WriteString("  • " + s.Text + "\n")
	}

	if len(d.RecentAssignments) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recent assignments") + "\n")
		for _, r := range d.RecentAssignments {
			sb.WriteString(fmt.Sprintf("  #%d %s  %s  %s\n", r.ID, r.Title, theme.Muted.Render(r.Deadline), theme.Status(r.Status)))
		}
	}

	if len(d.Tips) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Learning tips") + "\n")
		for _, tip := range d.Tips {
			sb.WriteString("  " + theme.Warn.Render(tip.Title) + " " + theme.Muted.Render(tip.Detail) + "\n")
		}
	}
	return sb.String()
}

const dayBarWidth = 24

// dayBar draws hours as a block bar scaled against the busiest day.
func dayBar(hours, peak float64) string {
	if peak <= 0 {
		return ""
	}
	n := max(int(hours/peak*dayBarWidth+0.5), 1)
	return theme.Good.Render(strings.Repeat("█", n)) +
		strings.Repeat(" ", dayBarWidth-n)
}

// byDate orders YYYY-MM-DD keys oldest first.
func byDate(daily map[string]float64) []string {
	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// byHours orders subjects by hours descending, then by name.
func byHours(hours map[string]float64) []string {
	subjects := make([]string, 0, len(hours))
	for s := range hours {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if hours[subjects[i]] != hours[subjects[j]] {
			return hours[subjects[i]] > hours[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})
	return subjects
}
