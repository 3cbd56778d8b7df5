package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recorddto "studytrack/internal/modules/record/dto"
	reportdto "studytrack/internal/modules/report/dto"
	"studytrack/internal/ui/components"
	"studytrack/internal/ui/theme"
	dashboardview "studytrack/internal/ui/views/dashboard"
	recordsview "studytrack/internal/ui/views/records"
	timetableview "studytrack/internal/ui/views/timetable"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type recordPort interface {
	AddAssignment(ctx context.Context, title, subject string, deadlineDays int, difficulty string) (recorddto.AssignmentResult, error)
	CompleteAssignment(ctx context.Context, id, score int) (recorddto.AssignmentResult, error)
	AddWork(ctx context.Context, title, subject string, hours float64, completed bool) (recorddto.WorkResult, error)
	AddProject(ctx context.Context, title, description string, deadlineDays int, status string) (recorddto.ProjectResult, error)
	LogSession(ctx context.Context, subject string, hours float64, topics string) (recorddto.SessionResult, error)
	AddTimetableEntry(ctx context.Context, day, at, subject string, hours float64) (recorddto.TimetableResult, error)
	ListAssignments(ctx context.Context) ([]recorddto.AssignmentOutput, error)
	ListWorks(ctx context.Context) ([]recorddto.WorkOutput, error)
	ListProjects(ctx context.Context) ([]recorddto.ProjectOutput, error)
	ListSessions(ctx context.Context) ([]recorddto.SessionOutput, error)
	Timetable(ctx context.Context, day string) ([]recorddto.TimetableEntryOutput, error)
	Dashboard(ctx context.Context) (recorddto.DashboardOutput, error)
}

type reportPort interface {
	PDF(ctx context.Context, path string) (reportdto.ExportOutput, error)
	Workbook(ctx context.Context, path string) (reportdto.ExportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabAssignments
	tabWorks
	tabProjects
	tabStudyLog
	tabTimetable
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Assignments", "Works", "Projects", "Study Log", "Timetable",
}

// ─── async messages ───────────────────────────────────────────────────────────

// recordedMsg reports the outcome of a palette command. Views are reloaded
// after every successful write.
type recordedMsg struct {
	status string
	err    error
	wrote  bool
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; reads and writes go through the ports.
type Model struct {
	student string

	records recordPort
	reports reportPort

	dashView   dashboardview.Model
	assignView recordsview.Model
	workView   recordsview.Model
	projView   recordsview.Model
	logView    recordsview.Model
	timeView   timetableview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(student string, records recordPort, reports reportPort) Model {
	return Model{
		student:    student,
		records:    records,
		reports:    reports,
		dashView:   dashboardview.New(records),
		assignView: recordsview.New("Assignments", "No assignments yet. Try :assignment:add", assignmentSource{p: records}),
		workView:   recordsview.New("Works", "No classwork or homework yet. Try :work:add", workSource{p: records}),
		projView:   recordsview.New("Projects", "No projects yet. Try :project:add", projectSource{p: records}),
		logView:    recordsview.New("Study Log", "No study sessions yet. Try :session:log", sessionSource{p: records}),
		timeView:   timetableview.New(records),
		activeTab:  tabDashboard,
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.assignView.Init(),
		m.workView.Init(),
		m.projView.Init(),
		m.logView.Init(),
		m.timeView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Loads are routed to their view regardless of the active tab.
	case dashboardview.LoadedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd

	case recordsview.LoadedMsg:
		var cmd tea.Cmd
		switch msg.Name {
		case "Assignments":
			m.assignView, cmd = m.assignView.Update(msg)
		case "Works":
			m.workView, cmd = m.workView.Update(msg)
		case "Projects":
			m.projView, cmd = m.projView.Update(msg)
		case "Study Log":
			m.logView, cmd = m.logView.Update(msg)
		}
		return m, cmd

	case timetableview.LoadedMsg:
		var cmd tea.Cmd
		m.timeView, cmd = m.timeView.Update(msg)
		return m, cmd

	case recordedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		if msg.wrote {
			return m, m.refreshAll()
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "r":
			m.status = "reloaded"
			return m, m.refreshAll()
		}
	}

	// Everything else goes to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabAssignments:
		m.assignView, tabCmd = m.assignView.Update(msg)
	case tabWorks:
		m.workView, tabCmd = m.workView.Update(msg)
	case tabProjects:
		m.projView, tabCmd = m.projView.Update(msg)
	case tabStudyLog:
		m.logView, tabCmd = m.logView.Update(msg)
	case tabTimetable:
		m.timeView, tabCmd = m.timeView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabAssignments:
		return m.assignView.View()
	case tabWorks:
		return m.workView.View()
	case tabProjects:
		return m.projView.View()
	case tabStudyLog:
		return m.logView.View()
	case tabTimetable:
		return m.timeView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studytrack · " + m.student + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  r:reload  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	ctx := context.Background()

	switch parts[0] {
	case "assignment:add":
		if len(parts) < 5 {
			m.status = "usage: assignment:add <subject> <days> <difficulty> <title...>"
			return m, nil
		}
		days, err := strconv.Atoi(parts[2])
		if err != nil {
			m.status = "invalid days: " + parts[2]
			return m, nil
		}
		subject, difficulty, title := parts[1], parts[3], strings.Join(parts[4:], " ")
		m.activeTab = tabAssignments
		return m, record(func() (string, error) {
			out, err := m.records.AddAssignment(ctx, title, subject, days, difficulty)
			return fmt.Sprintf("assignment #%d added, due %s", out.Assignment.ID, out.Assignment.Deadline), err
		})

	case "assignment:complete":
		if len(parts) != 3 {
			m.status = "usage: assignment:complete <id> <score>"
			return m, nil
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid id: " + parts[1]
			return m, nil
		}
		score, err := strconv.Atoi(parts[2])
		if err != nil {
			m.status = "invalid score: " + parts[2]
			return m, nil
		}
		return m, func() tea.Msg {
			out, err := m.records.CompleteAssignment(ctx, id, score)
			if err != nil {
				return recordedMsg{err: err}
			}
			if !out.OK {
				return recordedMsg{status: fmt.Sprintf("assignment #%d not found", id)}
			}
			return recordedMsg{status: fmt.Sprintf("assignment #%d completed with %d", id, score), wrote: true}
		}

	case "work:add":
		if len(parts) < 5 {
			m.status = "usage: work:add <subject> <hours> <done|todo> <title...>"
			return m, nil
		}
		hours, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			m.status = "invalid hours: " + parts[2]
			return m, nil
		}
		subject, done, title := parts[1], parts[3] == "done", strings.Join(parts[4:], " ")
		m.activeTab = tabWorks
		return m, record(func() (string, error) {
			out, err := m.records.AddWork(ctx, title, subject, hours, done)
			return fmt.Sprintf("work #%d added", out.Work.ID), err
		})

	case "project:add":
		if len(parts) < 4 {
			m.status = "usage: project:add <days> <in-progress|planning|review> <title...>"
			return m, nil
		}
		days, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid days: " + parts[1]
			return m, nil
		}
		status, title := strings.ReplaceAll(parts[2], "-", " "), strings.Join(parts[3:], " ")
		m.activeTab = tabProjects
		return m, record(func() (string, error) {
			out, err := m.records.AddProject(ctx, title, "", days, status)
			return fmt.Sprintf("project #%d added, due %s", out.Project.ID, out.Project.Deadline), err
		})

	case "session:log":
		if len(parts) < 3 {
			m.status = "usage: session:log <subject> <hours> [topics...]"
			return m, nil
		}
		hours, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			m.status = "invalid hours: " + parts[2]
			return m, nil
		}
		subject, topics := parts[1], strings.Join(parts[3:], " ")
		m.activeTab = tabStudyLog
		return m, record(func() (string, error) {
			out, err := m.records.LogSession(ctx, subject, hours, topics)
			return fmt.Sprintf("logged %gh of %s, streak %d", hours, subject, out.Streak), err
		})

	case "timetable:add":
		if len(parts) != 5 {
			m.status = "usage: timetable:add <day> <HH:MM> <subject> <hours>"
			return m, nil
		}
		hours, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			m.status = "invalid hours: " + parts[4]
			return m, nil
		}
		day, at, subject := parts[1], parts[2], parts[3]
		m.activeTab = tabTimetable
		return m, record(func() (string, error) {
			out, err := m.records.AddTimetableEntry(ctx, day, at, subject, hours)
			return fmt.Sprintf("timetable: %s %s %s", out.Entry.Day, out.Entry.Time, out.Entry.Subject), err
		})

	case "report:pdf", "report:xlsx":
		if m.reports == nil {
			m.status = "reports not configured"
			return m, nil
		}
		path := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		export := m.reports.PDF
		if parts[0] == "report:xlsx" {
			export = m.reports.Workbook
		}
		return m, func() tea.Msg {
			out, err := export(ctx, path)
			if err != nil {
				return recordedMsg{err: err}
			}
			return recordedMsg{status: "report written: " + out.Path}
		}

	case "refresh":
		m.status = "reloaded"
		return m, m.refreshAll()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// record runs a write and reports its status line.
func record(write func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := write()
		if err != nil {
			return recordedMsg{err: err}
		}
		return recordedMsg{status: status, wrote: true}
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) refreshAll() tea.Cmd {
	return tea.Batch(
		m.dashView.Refresh(),
		m.assignView.Refresh(),
		m.workView.Refresh(),
		m.projView.Refresh(),
		m.logView.Refresh(),
		m.timeView.Refresh(),
	)
}

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabAssignments:
		return m.assignView.Filtering()
	case tabWorks:
		return m.workView.Filtering()
	case tabProjects:
		return m.projView.Filtering()
	case tabStudyLog:
		return m.logView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.assignView, _ = m.assignView.Update(sz)
	m.workView, _ = m.workView.Update(sz)
	m.projView, _ = m.projView.Update(sz)
	m.logView, _ = m.logView.Update(sz)
	m.timeView, _ = m.timeView.Update(sz)
}
