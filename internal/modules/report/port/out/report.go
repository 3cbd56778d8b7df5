package out

import (
	"context"

	"studytrack/internal/modules/report/domain"
)

// RecordSource reads the student's records for a report.
type RecordSource interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

type Renderer interface {
	Render(ctx context.Context, snapshot domain.Snapshot, path string) error
}
