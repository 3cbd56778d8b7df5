package out

import (
	"context"

	"studytrack/internal/modules/record/domain"
)

// StateStore persists the whole document. Load on a missing document returns
// an empty state, not an error.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// Projector maintains a disposable query index derived from the document.
type Projector interface {
	Reset(ctx context.Context) error
	Sync(ctx context.Context, state domain.State) error
	SubjectHours(ctx context.Context) (map[string]float64, error)
}

type Journal interface {
	Append(ctx context.Context, session domain.StudySession) (string, error)
}
