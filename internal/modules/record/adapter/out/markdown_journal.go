package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studytrack/internal/modules/record/domain"
	recordout "studytrack/internal/modules/record/port/out"
	"studytrack/internal/platform/markdown"
	"studytrack/internal/platform/slug"
)

// MarkdownJournal writes one note per logged study session under
// <dir>/YYYY/MM/DD/HHMMSS-<subject>.md. A session that would reuse an
// existing name gets a -2, -3, ... suffix.
type MarkdownJournal struct {
	dir string
}

func NewMarkdownJournal(dir string) recordout.Journal {
	return &MarkdownJournal{dir: dir}
}

func (j *MarkdownJournal) Append(_ context.Context, session domain.StudySession) (string, error) {
	at, err := time.ParseInLocation(domain.TimestampLayout, session.Timestamp, time.Local)
	if err != nil {
		return "", fmt.Errorf("session timestamp %q: %w", session.Timestamp, err)
	}
	dayDir := filepath.Join(j.dir, at.Format("2006"), at.Format("01"), at.Format("02"))
	if err := os.MkdirAll(dayDir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	base := fmt.Sprintf("%s-%s", at.Format("150405"), slug.Make(session.Subject))

	var body strings.Builder
	fmt.Fprintf(&body, "# %s\n\n", session.Subject)
	fmt.Fprintf(&body, "- Date: %s\n- Duration: %g hours\n", session.Date, session.DurationHours)
	if topics := strings.TrimSpace(session.Topics); topics != "" {
		fmt.Fprintf(&body, "\n## Topics\n\n%s\n", topics)
	}
	note := markdown.Note{
		Meta: map[string]any{
			"date":           session.Date,
			"timestamp":      session.Timestamp,
			"subject":        session.Subject,
			"duration_hours": session.DurationHours,
			"topics":         session.Topics,
		},
		Body: body.String(),
	}
	rendered, err := note.Render()
	if err != nil {
		return "", err
	}
	return createNote(dayDir, base, []byte(rendered))
}

const maxNoteSuffix = 1000

// createNote writes content to a file name under dir that does not exist yet.
func createNote(dir, base string, content []byte) (string, error) {
	for n := 1; n <= maxNoteSuffix; n++ {
		name := base + ".md"
		if n > 1 {
			name = fmt.Sprintf("%s-%d.md", base, n)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create journal note: %w", err)
		}
		if _, err := f.Write(content); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write journal note: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close journal note: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("journal note %s: too many notes with this name", base)
}
