package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studytrack/internal/ui/theme"
)

// PaletteSubmitMsg carries a confirmed command line.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is sent when the palette is dismissed with esc.
type PaletteCancelMsg struct{}

const (
	maxHints   = 5
	maxHistory = 20
)

var (
	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	usageStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
	matchStyle = lipgloss.NewStyle().Foreground(theme.Lavender)
)

// usages must stay in sync with executePalette in app/model.go.
var usages = []string{
	"assignment:add <subject> <days> <difficulty> <title...>",
	"assignment:complete <id> <score>",
	"work:add <subject> <hours> <done|todo> <title...>",
	"project:add <days> <in-progress|planning|review> <title...>",
	"session:log <subject> <hours> [topics...]",
	"timetable:add <day> <HH:MM> <subject> <hours>",
	"report:pdf [path]",
	"report:xlsx [path]",
	"refresh",
}

// Palette is a one-line command prompt. Submitted lines are kept in a short
// history that up and down walk through; tab completes the command name.
type Palette struct {
	input   textinput.Model
	history []string
	cursor  int
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "session:log Math 1.5 derivatives"
	ti.CharLimit = 256
	ti.Prompt = ": "
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows an empty palette and focuses it.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.cursor = len(p.history)
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// History returns submitted lines, oldest first.
func (p Palette) History() []string {
	return append([]string(nil), p.history...)
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			line := strings.TrimSpace(p.input.Value())
			p.remember(line)
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		case "tab":
			if name, ok := Complete(p.input.Value()); ok {
				p.input.SetValue(name + " ")
				p.input.CursorEnd()
			}
			return p, nil
		case "up":
			p.recall(-1)
			return p, nil
		case "down":
			p.recall(1)
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Record something") + "\n")
	sb.WriteString(p.input.View() + "\n")
	if hints := Hints(p.input.Value(), maxHints); len(hints) > 0 {
		sb.WriteString("\n")
		for _, h := range hints {
			name, args, _ := strings.Cut(h, " ")
			sb.WriteString("  " + matchStyle.Render(name) + " " + usageStyle.Render(args) + "\n")
		}
	}
	w := p.width
	if w < 20 {
		w = 64
	}
	return boxStyle.Width(w - 2).Render(sb.String())
}

// Hints returns up to limit usage lines whose command starts with the first
// word of input.
func Hints(input string, limit int) []string {
	prefix := ""
	if fields := strings.Fields(strings.ToLower(input)); len(fields) > 0 {
		prefix = fields[0]
	}
	var out []string
	for _, u := range usages {
		if strings.HasPrefix(u, prefix) {
			out = append(out, u)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Complete expands a partial command name when exactly one command matches.
func Complete(input string) (string, bool) {
	if strings.Contains(strings.TrimSpace(input), " ") {
		return "", false
	}
	var found string
	for _, u := range usages {
		name, _, _ := strings.Cut(u, " ")
		if strings.HasPrefix(name, strings.ToLower(strings.TrimSpace(input))) {
			if found != "" {
				return "", false
			}
			found = name
		}
	}
	return found, found != ""
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p *Palette) remember(line string) {
	if line == "" || (len(p.history) > 0 && p.history[len(p.history)-1] == line) {
		return
	}
	p.history = append(p.history, line)
	if len(p.history) > maxHistory {
		p.history = p.history[len(p.history)-maxHistory:]
	}
}

func (p *Palette) recall(step int) {
	next := p.cursor + step
	if next < 0 || next > len(p.history) {
		return
	}
	p.cursor = next
	if next == len(p.history) {
		p.input.SetValue("")
		return
	}
	p.input.SetValue(p.history[next])
	p.input.CursorEnd()
}
