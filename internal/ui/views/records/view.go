package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studytrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Field is one labelled line of the detail pane.
type Field struct {
	Label string
	Value string
}

// Item is a record flattened for display.
type Item struct {
	Key     string
	Heading string
	Summary string
	Fields  []Field
}

// Source loads one kind of record. The app bridges each record listing to
// a Source.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries the items for the view named Name.
type LoadedMsg struct {
	Name  string
	Items []Item
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type listItem struct{ item Item }

func (i listItem) Title() string       { return i.item.Heading }
func (i listItem) Description() string { return i.item.Summary }
func (i listItem) FilterValue() string { return i.item.Heading + " " + i.item.Summary }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	name   string
	empty  string
	source Source
	list   list.Model
	detail viewport.Model
	loaded bool
	width  int
	height int
}

// New builds a list view titled name. empty is shown when nothing has been
// recorded yet.
func New(name, empty string, source Source) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = name
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{name: name, empty: empty, source: source, list: l, detail: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads the items from the source.
func (m Model) Refresh() tea.Cmd {
	name, source := m.name, m.source
	return func() tea.Msg {
		if source == nil {
			return LoadedMsg{Name: name, Err: fmt.Errorf("record store not configured")}
		}
		items, err := source.Load(context.Background())
		return LoadedMsg{Name: name, Items: items, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Name != m.name {
			return m, nil
		}
		m.loaded = true
		if msg.Err != nil {
			m.list.Title = m.name + ": " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = m.name
		items := make([]list.Item, len(msg.Items))
		for i, it := range msg.Items {
			items[i] = listItem{item: it}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.showSelected()
		return m, tea.Batch(cmds...)
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.showSelected()
	}

	var vCmd tea.Cmd
	m.detail, vCmd = m.detail.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loaded && len(m.list.Items()) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render(m.empty))
	}

	listW := m.width / 2
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - listW - 2).
		Height(m.height - 2).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the key of the highlighted item.
func (m Model) Selected() (string, bool) {
	if it, ok := m.list.SelectedItem().(listItem); ok {
		return it.item.Key, true
	}
	return "", false
}

// Len is the number of loaded items.
func (m Model) Len() int {
	return len(m.list.Items())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width / 2
	m.list.SetSize(listW, m.height)
	m.detail.Width = m.width - listW - 4
	m.detail.Height = m.height - 4
}

func (m *Model) showSelected() {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(renderDetail(it.item))
	m.detail.GotoTop()
}

func renderDetail(it Item) string {
	width := 0
	for _, f := range it.Fields {
		width = max(width, len(f.Label))
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(it.Heading) + "\n\n")
	for _, f := range it.Fields {
		if f.Value == "" {
			continue
		}
		label := fmt.Sprintf("%-*s  ", width+1, f.Label+":")
		sb.WriteString(theme.Muted.Render(label) + f.Value + "\n")
	}
	return sb.String()
}
