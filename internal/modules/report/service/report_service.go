package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studytrack/internal/modules/report/domain"
	reportout "studytrack/internal/modules/report/port/out"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/logger"
)

type ReportService struct {
	clock      clock.Clock
	source     reportout.RecordSource
	renderers  map[domain.Format]reportout.Renderer
	reportsDir string
	log        *logger.Logger
}

func NewReportService(clk clock.Clock, source reportout.RecordSource, reportsDir string, renderers map[domain.Format]reportout.Renderer, log *logger.Logger) *ReportService {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportService{
		clock:      clk,
		source:     source,
		renderers:  renderers,
		reportsDir: reportsDir,
		log:        log,
	}
}

// Export renders the current records in format. It returns the written path
// and the snapshot that was rendered.
func (s *ReportService) Export(ctx context.Context, format domain.Format, path string) (string, domain.Snapshot, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return "", domain.Snapshot{}, fmt.Errorf("%w: unsupported report format %q", apperrors.ErrInvalidInput, format)
	}
	snapshot, err := s.source.Snapshot(ctx)
	if err != nil {
		return "", domain.Snapshot{}, fmt.Errorf("read records: %w", err)
	}
	now := s.clock.Now()
	if snapshot.GeneratedAt.IsZero() {
		snapshot.GeneratedAt = now
	}

	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join(s.reportsDir, domain.FileName(format, now))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", domain.Snapshot{}, fmt.Errorf("create report dir: %w", err)
	}
	if err := renderer.Render(ctx, snapshot, path); err != nil {
		s.log.Error("render report failed", "format", string(format), "path", path, "error", err)
		return "", domain.Snapshot{}, err
	}
	s.log.Info("report written", "format", string(format), "path", path)
	return path, snapshot, nil
}
