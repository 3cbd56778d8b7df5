package records

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubSource struct {
	items []Item
	err   error
}

func (s stubSource) Load(context.Context) ([]Item, error) { return s.items, s.err }

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = m.Update(m.Refresh()())
	return m
}

func TestLoadSelectsFirstItem(t *testing.T) {
	t.Parallel()
	m := loaded(t, New("Projects", "nothing yet", stubSource{items: []Item{
		{Key: "1", Heading: "#1 Robot", Summary: "Planning", Fields: []Field{{Label: "status", Value: "Planning"}}},
		{Key: "2", Heading: "#2 Poster", Summary: "Review"},
	}}))

	if m.Len() != 2 {
		t.Fatalf("len = %d", m.Len())
	}
	key, ok := m.Selected()
	if !ok || key != "1" {
		t.Fatalf("selected = %q %v", key, ok)
	}
	if out := m.View(); !strings.Contains(out, "#1 Robot") {
		t.Fatalf("view missing item:\n%s", out)
	}
}

func TestIgnoresOtherViewsLoads(t *testing.T) {
	t.Parallel()
	m := New("Projects", "nothing yet", stubSource{})
	m, _ = m.Update(LoadedMsg{Name: "Assignments", Items: []Item{{Key: "9", Heading: "x"}}})
	if m.Len() != 0 {
		t.Fatalf("loaded items meant for another view")
	}
}

func TestEmptyAndErrorStates(t *testing.T) {
	t.Parallel()
	m := loaded(t, New("Study Log", "No study sessions yet", stubSource{}))
	if out := m.View(); !strings.Contains(out, "No study sessions yet") {
		t.Fatalf("view missing empty text:\n%s", out)
	}

	m = loaded(t, New("Study Log", "No study sessions yet", stubSource{err: errors.New("corrupt")}))
	if !strings.Contains(m.list.Title, "corrupt") {
		t.Fatalf("title = %q", m.list.Title)
	}
}

func TestRenderDetailSkipsEmptyFields(t *testing.T) {
	t.Parallel()
	out := renderDetail(Item{Heading: "#3 Essay", Fields: []Field{
		{Label: "subject", Value: "History"},
		{Label: "score", Value: ""},
	}})
	if !strings.Contains(out, "History") || strings.Contains(out, "score") {
		t.Fatalf("unexpected detail:\n%s", out)
	}
}
