package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHintsFilterByCommandPrefix(t *testing.T) {
	t.Parallel()
	if got := Hints("", 3); len(got) != 3 {
		t.Fatalf("empty input hints = %d", len(got))
	}
	got := Hints("report:x some/path.xlsx", 5)
	if len(got) != 1 || got[0] != "report:xlsx [path]" {
		t.Fatalf("hints = %v", got)
	}
}

func TestCompleteRequiresUniqueMatch(t *testing.T) {
	t.Parallel()
	if name, ok := Complete("sess"); !ok || name != "session:log" {
		t.Fatalf("complete sess = %q %v", name, ok)
	}
	if _, ok := Complete("assignment:"); ok {
		t.Fatalf("ambiguous prefix should not complete")
	}
	if _, ok := Complete("session:log Math"); ok {
		t.Fatalf("arguments should stop completion")
	}
}

func typeLine(p Palette, line string) Palette {
	for _, r := range line {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestSubmitRemembersHistory(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p = typeLine(p, "refresh")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette should close on enter")
	}
	if msg, ok := cmd().(PaletteSubmitMsg); !ok || msg.Input != "refresh" {
		t.Fatalf("unexpected message %#v", cmd())
	}

	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.input.Value() != "refresh" {
		t.Fatalf("recalled %q", p.input.Value())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.input.Value() != "" {
		t.Fatalf("down past newest should clear, got %q", p.input.Value())
	}
	if h := p.History(); len(h) != 1 {
		t.Fatalf("history = %v", h)
	}
}

func TestEscCancels(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("palette should close on esc")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}
}
