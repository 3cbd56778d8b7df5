package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"studytrack/internal/modules/record/domain"
	recordout "studytrack/internal/modules/record/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteProjector mirrors assignments and the session log into SQLite. The
// document stays authoritative; the database can be deleted and rebuilt.
type SQLiteProjector struct {
	db *sqlx.DB
}

var _ recordout.Projector = (*SQLiteProjector)(nil)

type assignmentRow struct {
	ID             int           `db:"id"`
	Title          string        `db:"title"`
	Subject        string        `db:"subject"`
	Deadline       string        `db:"deadline"`
	Difficulty     string        `db:"difficulty"`
	Status         string        `db:"status"`
	CreatedDate    string        `db:"created_date"`
	Score          sql.NullInt64 `db:"score"`
	CompletionDate string        `db:"completion_date"`
}

type sessionRow struct {
	Seq           int     `db:"seq"`
	Date          string  `db:"date"`
	Timestamp     string  `db:"timestamp"`
	Subject       string  `db:"subject"`
	DurationHours float64 `db:"duration_hours"`
	Topics        string  `db:"topics"`
}

type subjectHoursRow struct {
	Subject string  `db:"subject"`
	Hours   float64 `db:"hours"`
}

func NewSQLiteProjector(dbPath string) (*SQLiteProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	projector := &SQLiteProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteProjector) Close() error {
	return p.db.Close()
}

func (p *SQLiteProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS assignments (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  subject TEXT NOT NULL,
  deadline TEXT NOT NULL,
  difficulty TEXT NOT NULL,
  status TEXT NOT NULL,
  created_date TEXT NOT NULL,
  score INTEGER,
  completion_date TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS study_sessions (
  seq INTEGER PRIMARY KEY,
  date TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  subject TEXT NOT NULL,
  duration_hours REAL NOT NULL,
  topics TEXT NOT NULL
);
CREATE VIEW IF NOT EXISTS subject_hours AS
  SELECT subject, SUM(duration_hours) AS hours FROM study_sessions GROUP BY subject;
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create projection schema: %w", err)
	}
	return nil
}

func (p *SQLiteProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM assignments; DELETE FROM study_sessions;`); err != nil {
		return fmt.Errorf("reset projection: %w", err)
	}
	return nil
}

// Sync replaces the projected rows with the content of state in one
// transaction.
func (p *SQLiteProjector) Sync(ctx context.Context, state domain.State) (err error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin projection sync: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM assignments`); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM study_sessions`); err != nil {
		return fmt.Errorf("clear study sessions: %w", err)
	}

	const insertAssignment = `
INSERT OR REPLACE INTO assignments (id, title, subject, deadline, difficulty, status, created_date, score, completion_date)
VALUES (:id, :title, :subject, :deadline, :difficulty, :status, :created_date, :score, :completion_date)`
	for _, a := range state.Assignments {
		row := assignmentRow{
			ID:             a.ID,
			Title:          a.Title,
			Subject:        a.Subject,
			Deadline:       a.Deadline,
			Difficulty:     string(a.Difficulty),
			Status:         string(a.Status),
			CreatedDate:    a.CreatedDate,
			Score:          nullableScore(a.Score),
			CompletionDate: a.CompletionDate,
		}
		if _, err = tx.NamedExecContext(ctx, insertAssignment, row); err != nil {
			return fmt.Errorf("project assignment %d: %w", a.ID, err)
		}
	}

	const insertSession = `
INSERT INTO study_sessions (seq, date, timestamp, subject, duration_hours, topics)
VALUES (:seq, :date, :timestamp, :subject, :duration_hours, :topics)`
	for i, s := range state.StudyLog {
		row := sessionRow{
			Seq:           i + 1,
			Date:          s.Date,
			Timestamp:     s.Timestamp,
			Subject:       s.Subject,
			DurationHours: s.DurationHours,
			Topics:        s.Topics,
		}
		if _, err = tx.NamedExecContext(ctx, insertSession, row); err != nil {
			return fmt.Errorf("project session %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit projection sync: %w", err)
	}
	return nil
}

func (p *SQLiteProjector) SubjectHours(ctx context.Context) (map[string]float64, error) {
	rows := []subjectHoursRow{}
	if err := p.db.SelectContext(ctx, &rows, `SELECT subject, hours FROM subject_hours ORDER BY subject`); err != nil {
		return nil, fmt.Errorf("query subject hours: %w", err)
	}
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Subject] = r.Hours
	}
	return out, nil
}

func nullableScore(score *int) sql.NullInt64 {
	if score == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*score), Valid: true}
}
