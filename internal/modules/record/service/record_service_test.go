package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studytrack/internal/modules/record/domain"
	"studytrack/internal/modules/record/service"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
)

type memoryStore struct {
	state   domain.State
	saves   int
	saveErr error
	loadErr error
}

func (m *memoryStore) Load(context.Context) (domain.State, error) {
	if m.loadErr != nil {
		return domain.State{}, m.loadErr
	}
	return m.state.Clone(), nil
}

func (m *memoryStore) Save(_ context.Context, state domain.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.state = state.Clone()
	return nil
}

type fakeProjector struct {
	hours   map[string]float64
	syncs   int
	resets  int
	syncErr error
}

func (f *fakeProjector) Reset(context.Context) error {
	f.resets++
	f.hours = map[string]float64{}
	return nil
}

func (f *fakeProjector) Sync(_ context.Context, state domain.State) error {
	if f.syncErr != nil {
		return f.syncErr
	}
	f.syncs++
	f.hours = domain.SubjectHours(state.StudyLog)
	return nil
}

func (f *fakeProjector) SubjectHours(context.Context) (map[string]float64, error) {
	return f.hours, nil
}

type fakeJournal struct {
	sessions []domain.StudySession
	err      error
}

func (f *fakeJournal) Append(_ context.Context, session domain.StudySession) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sessions = append(f.sessions, session)
	return "/journal/note.md", nil
}

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)

func newService(t *testing.T, store *memoryStore, opts ...service.Option) *service.RecordService {
	t.Helper()
	if store.state.Timetable == nil {
		store.state = domain.NewState()
	}
	svc, err := service.NewRecordService(context.Background(), clock.Fixed(fixedNow), store, opts...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewRecordServiceWrapsLoadError(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk gone")
	_, err := service.NewRecordService(context.Background(), clock.Fixed(fixedNow), &memoryStore{loadErr: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}

func TestAddAssignmentDerivesDatesAndPersists(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newService(t, store)

	a, err := svc.AddAssignment(context.Background(), "Essay", "History", 3, domain.DifficultyHard)
	if err != nil {
		t.Fatalf("add assignment: %v", err)
	}
	if a.ID != 1 || a.Status != domain.StatusPending {
		t.Fatalf("unexpected assignment: %+v", a)
	}
	if a.Deadline != "2026-03-13" {
		t.Fatalf("deadline = %q", a.Deadline)
	}
	if a.CreatedDate != "2026-03-10 09:30:00" {
		t.Fatalf("created = %q", a.CreatedDate)
	}
	if store.saves != 1 || len(store.state.Assignments) != 1 {
		t.Fatalf("expected one persisted assignment, saves=%d", store.saves)
	}
}

func TestCompleteAssignmentMissingIDSkipsWrite(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newService(t, store)

	_, found, err := svc.CompleteAssignment(context.Background(), 99, 80)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if found {
		t.Fatalf("expected not found")
	}
	if store.saves != 0 {
		t.Fatalf("expected no write, got %d", store.saves)
	}
}

func TestCompleteAssignmentSetsScoreAndDate(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newService(t, store)
	ctx := context.Background()
	if _, err := svc.AddAssignment(ctx, "Lab", "Chemistry", 1, domain.DifficultyEasy); err != nil {
		t.Fatalf("add: %v", err)
	}

	a, found, err := svc.CompleteAssignment(ctx, 1, 92)
	if err != nil || !found {
		t.Fatalf("complete: found=%v err=%v", found, err)
	}
	if a.Status != domain.StatusCompleted || a.ScoreValue() != 92 || a.CompletionDate != "2026-03-10" {
		t.Fatalf("unexpected completion: %+v", a)
	}
	if got := store.state.Assignments[0].ScoreValue(); got != 92 {
		t.Fatalf("persisted score = %d", got)
	}
}

func TestFailedSaveRestoresPreviousState(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newService(t, store)
	ctx := context.Background()
	if _, _, _, err := svc.LogStudySession(ctx, "Math", 1.5, "limits"); err != nil {
		t.Fatalf("log: %v", err)
	}

	store.saveErr = errors.New("read-only filesystem")
	if _, _, _, err := svc.LogStudySession(ctx, "Math", 2, "series"); err == nil {
		t.Fatalf("expected persist error")
	}
	if _, err := svc.AddAssignment(ctx, "Quiz", "Math", 1, domain.DifficultyEasy); err == nil {
		t.Fatalf("expected persist error")
	}

	snap := svc.Snapshot()
	if len(snap.StudyLog) != 1 || snap.TotalStudyHours != 1.5 || snap.Streak != 1 {
		t.Fatalf("state changed after failed save: %+v", snap)
	}
	if len(snap.Assignments) != 0 {
		t.Fatalf("assignment kept after failed save")
	}
}

func TestLogStudySessionAdvancesStreakAndJournals(t *testing.T) {
	t.Parallel()
	journal := &fakeJournal{}
	projector := &fakeProjector{}
	svc := newService(t, &memoryStore{}, service.WithJournal(journal), service.WithProjector(projector))
	ctx := context.Background()

	_, _, path, err := svc.LogStudySession(ctx, "Physics", 2, "optics")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if path != "/journal/note.md" {
		t.Fatalf("journal path = %q", path)
	}
	_, state, _, err := svc.LogStudySession(ctx, "Physics", 1, "waves")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if state.TotalStudyHours != 3 || state.Streak != 2 {
		t.Fatalf("hours=%v streak=%d", state.TotalStudyHours, state.Streak)
	}
	if len(journal.sessions) != 2 || projector.syncs != 2 {
		t.Fatalf("journal=%d syncs=%d", len(journal.sessions), projector.syncs)
	}
}

func TestJournalFailureDoesNotFailSession(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newService(t, store, service.WithJournal(&fakeJournal{err: errors.New("no space")}))

	_, state, path, err := svc.LogStudySession(context.Background(), "Art", 1, "")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if path != "" || len(state.StudyLog) != 1 || store.saves != 1 {
		t.Fatalf("unexpected result path=%q sessions=%d saves=%d", path, len(state.StudyLog), store.saves)
	}
}

func TestAddTimetableEntryValidatesClock(t *testing.T) {
	t.Parallel()
	svc := newService(t, &memoryStore{})
	ctx := context.Background()

	if _, err := svc.AddTimetableEntry(ctx, domain.Monday, "25:00", "Math", 1); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	entry, err := svc.AddTimetableEntry(ctx, domain.Monday, "9:05", "Math", 1)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if entry.Time != "09:05" {
		t.Fatalf("time = %q", entry.Time)
	}
}

func TestEncouragementUsesPickerAndName(t *testing.T) {
	t.Parallel()
	svc := newService(t, &memoryStore{}, service.WithStudentName("Ada"), service.WithPicker(func(int) int { return 0 }))
	if got := svc.Encouragement(); !strings.Contains(got, "Ada") {
		t.Fatalf("encouragement %q does not name the student", got)
	}
	dash := svc.Dashboard()
	if dash.StudentName != "Ada" || dash.Encouragement == "" {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
}

func TestDoctorReportsDriftAndProjection(t *testing.T) {
	t.Parallel()
	store := &memoryStore{state: domain.NewState()}
	store.state.StudyLog = []domain.StudySession{{Date: "2026-03-09", Subject: "Math", DurationHours: 2}}
	store.state.TotalStudyHours = 5
	projector := &fakeProjector{hours: map[string]float64{}}
	svc := newService(t, store, service.WithProjector(projector))
	ctx := context.Background()

	health, err := svc.Doctor(ctx)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if health.Drift() != 3 || health.ProjectionInSync || health.OK() {
		t.Fatalf("unexpected health: %+v", health)
	}

	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	health, err = svc.Doctor(ctx)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !health.ProjectionInSync || health.ProjectionHours != 2 || projector.resets != 1 {
		t.Fatalf("projection not rebuilt: %+v", health)
	}
}

func TestProjectionSyncFailureKeepsMutation(t *testing.T) {
	t.Parallel()
	store := &memoryStore{}
	svc := newService(t, store, service.WithProjector(&fakeProjector{syncErr: errors.New("locked")}))

	if _, err := svc.AddWork(context.Background(), "Reading", "English", 1.5, true); err != nil {
		t.Fatalf("add work: %v", err)
	}
	if len(svc.Snapshot().Works) != 1 || store.saves != 1 {
		t.Fatalf("work not kept")
	}
}
