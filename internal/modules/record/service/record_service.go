package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"studytrack/internal/modules/record/domain"
	recordout "studytrack/internal/modules/record/port/out"
	"studytrack/internal/platform/clock"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/logger"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

type Option func(*RecordService)

func WithProjector(p recordout.Projector) Option {
	return func(s *RecordService) { s.projector = p }
}

func WithJournal(j recordout.Journal) Option {
	return func(s *RecordService) { s.journal = j }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *RecordService) {
		if l != nil {
			s.log = l
		}
	}
}

func WithPicker(p Picker) Option {
	return func(s *RecordService) {
		if p != nil {
			s.pick = p
		}
	}
}

func WithStudentName(name string) Option {
	return func(s *RecordService) {
		if name != "" {
			s.student = name
		}
	}
}

// RecordService owns the single in-memory copy of the student's records.
// Every mutation is applied, persisted and only then kept; a failed write
// restores the previous state.
type RecordService struct {
	mu        sync.Mutex
	clock     clock.Clock
	store     recordout.StateStore
	projector recordout.Projector
	journal   recordout.Journal
	log       *logger.Logger
	pick      Picker
	student   string
	state     domain.State
}

func NewRecordService(ctx context.Context, clk clock.Clock, store recordout.StateStore, opts ...Option) (*RecordService, error) {
	s := &RecordService{
		clock:   clk,
		store:   store,
		log:     logger.Nop(),
		pick:    rand.Intn,
		student: "Student",
	}
	for _, opt := range opts {
		opt(s)
	}
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	state.Normalize()
	s.state = state
	return s, nil
}

func (s *RecordService) StudentName() string {
	return s.student
}

func (s *RecordService) AddAssignment(ctx context.Context, title, subject string, deadlineDays int, difficulty domain.Difficulty) (domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	var added domain.Assignment
	err := s.mutate(ctx, "add_assignment", func(st *domain.State) error {
		added = domain.Assignment{
			ID:          st.NextAssignmentID(),
			Title:       title,
			Subject:     subject,
			Deadline:    now.AddDate(0, 0, deadlineDays).Format(domain.DateLayout),
			Difficulty:  difficulty,
			Status:      domain.StatusPending,
			CreatedDate: now.Format(domain.TimestampLayout),
		}
		st.Assignments = append(st.Assignments, added)
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	return added, nil
}

// CompleteAssignment marks the first assignment with id as completed. found
// is false, with a nil error and no write, when no assignment has that id.
func (s *RecordService) CompleteAssignment(ctx context.Context, id, score int) (assignment domain.Assignment, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, a := range s.state.Assignments {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Debug("assignment not found", "id", id)
		return domain.Assignment{}, false, nil
	}
	today := s.clock.Now().Format(domain.DateLayout)
	err = s.mutate(ctx, "complete_assignment", func(st *domain.State) error {
		a := &st.Assignments[idx]
		a.Status = domain.StatusCompleted
		a.Score = &score
		a.CompletionDate = today
		assignment = *a
		return nil
	})
	if err != nil {
		return domain.Assignment{}, true, err
	}
	return assignment, true, nil
}

func (s *RecordService) AddWork(ctx context.Context, title, subject string, hours float64, completed bool) (domain.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	var added domain.Work
	err := s.mutate(ctx, "add_work", func(st *domain.State) error {
		added = domain.Work{
			ID:            st.NextWorkID(),
			Title:         title,
			Subject:       subject,
			DurationHours: hours,
			Completed:     completed,
			Date:          now.Format(domain.DateLayout),
			Timestamp:     now.Format(domain.TimestampLayout),
		}
		st.Works = append(st.Works, added)
		return nil
	})
	if err != nil {
		return domain.Work{}, err
	}
	return added, nil
}

func (s *RecordService) AddProject(ctx context.Context, title, description string, deadlineDays int, status domain.ProjectStatus) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	var added domain.Project
	err := s.mutate(ctx, "add_project", func(st *domain.State) error {
		added = domain.Project{
			ID:          st.NextProjectID(),
			Title:       title,
			Description: description,
			Deadline:    now.AddDate(0, 0, deadlineDays).Format(domain.DateLayout),
			Status:      status,
			Progress:    0,
			CreatedDate: now.Format(domain.DateLayout),
		}
		st.Projects = append(st.Projects, added)
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return added, nil
}

// LogStudySession appends a session, grows the hour total, advances the
// streak and persists. The journal note, when configured, is written after
// the document and never fails the call.
func (s *RecordService) LogStudySession(ctx context.Context, subject string, hours float64, topics string) (domain.StudySession, domain.State, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	today := now.Format(domain.DateLayout)
	logged := domain.StudySession{
		Date:          today,
		Timestamp:     now.Format(domain.TimestampLayout),
		Subject:       subject,
		DurationHours: hours,
		Topics:        topics,
	}
	err := s.mutate(ctx, "log_study_session", func(st *domain.State) error {
		st.StudyLog = append(st.StudyLog, logged)
		st.TotalStudyHours += hours
		st.Streak = domain.AdvanceStreak(st.Streak, st.StudyLog, today)
		return nil
	})
	if err != nil {
		return domain.StudySession{}, domain.State{}, "", err
	}

	notePath := ""
	if s.journal != nil {
		path, jerr := s.journal.Append(ctx, logged)
		if jerr != nil {
			s.log.Warn("journal append failed", "subject", subject, "error", jerr)
		} else {
			notePath = path
		}
	}
	return logged, s.state.Clone(), notePath, nil
}

// AddTimetableEntry appends to the day's sequence. clockTime must be HH:MM
// (a single-digit hour is accepted and normalized).
func (s *RecordService) AddTimetableEntry(ctx context.Context, day domain.Weekday, clockTime, subject string, hours float64) (domain.TimetableEntry, error) {
	parsed, err := time.Parse("15:04", clockTime)
	if err != nil {
		return domain.TimetableEntry{}, fmt.Errorf("%w: time %q must be HH:MM", apperrors.ErrInvalidInput, clockTime)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := domain.TimetableEntry{
		Day:  day,
		Slot: domain.Slot{Time: parsed.Format(domain.ClockLayout), Subject: subject, DurationHours: hours},
	}
	err = s.mutate(ctx, "add_timetable_entry", func(st *domain.State) error {
		st.Timetable[day] = append(st.Timetable[day], entry.Slot)
		return nil
	})
	if err != nil {
		return domain.TimetableEntry{}, err
	}
	return entry, nil
}

// Snapshot returns a deep copy of the current state.
func (s *RecordService) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *RecordService) Analytics() domain.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeAnalytics(s.state, s.clock.Now())
}

func (s *RecordService) Suggestions() []domain.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Suggest(s.state)
}

func (s *RecordService) Encouragement() string {
	return domain.Encouragement(s.student, s.pick(domain.EncouragementCount()))
}

func (s *RecordService) Dashboard() domain.Dashboard {
	s.mu.Lock()
	state := s.state.Clone()
	now := s.clock.Now()
	s.mu.Unlock()
	return domain.Dashboard{
		StudentName:       s.student,
		Analytics:         domain.ComputeAnalytics(state, now),
		Suggestions:       domain.Suggest(state),
		Encouragement:     s.Encouragement(),
		RecentAssignments: domain.LastAssignments(state.Assignments, domain.RecentAssignments),
		Projects:          state.Projects,
		Timetable:         state.Entries(),
		Tips:              domain.LearningTips(),
	}
}

// Health compares the running hour total with the session log and, when a
// projector is configured, with the projection.
type Health struct {
	Sessions         int
	RecordedHours    float64
	ComputedHours    float64
	ProjectionHours  float64
	ProjectionInSync bool
}

const hoursEpsilon = 1e-6

func (h Health) Drift() float64 {
	return h.RecordedHours - h.ComputedHours
}

func (h Health) OK() bool {
	return math.Abs(h.Drift()) < hoursEpsilon && h.ProjectionInSync
}

func (s *RecordService) Doctor(ctx context.Context) (Health, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := Health{
		Sessions:         len(s.state.StudyLog),
		RecordedHours:    s.state.TotalStudyHours,
		ProjectionInSync: true,
	}
	for _, session := range s.state.StudyLog {
		h.ComputedHours += session.DurationHours
	}
	if s.projector == nil {
		h.ProjectionHours = h.ComputedHours
		return h, nil
	}
	projected, err := s.projector.SubjectHours(ctx)
	if err != nil {
		return Health{}, err
	}
	for _, hours := range projected {
		h.ProjectionHours += hours
	}
	expected := domain.SubjectHours(s.state.StudyLog)
	if len(projected) != len(expected) {
		h.ProjectionInSync = false
	}
	for subject, hours := range expected {
		if math.Abs(projected[subject]-hours) > hoursEpsilon {
			h.ProjectionInSync = false
		}
	}
	return h, nil
}

func (s *RecordService) Reindex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.projector == nil {
		return nil
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	return s.projector.Sync(ctx, s.state)
}

// mutate applies fn to a copy of the state, persists the copy and swaps it in
// only once the write succeeded.
func (s *RecordService) mutate(ctx context.Context, op string, fn func(*domain.State) error) error {
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		s.log.Error("persist state failed", "op", op, "error", err)
		return fmt.Errorf("persist %s: %w", op, err)
	}
	s.state = next
	s.log.Debug("state persisted", "op", op, "assignments", len(next.Assignments), "sessions", len(next.StudyLog))
	if s.projector != nil {
		if err := s.projector.Sync(ctx, next); err != nil {
			s.log.Warn("projection sync failed", "op", op, "error", err)
		}
	}
	return nil
}
