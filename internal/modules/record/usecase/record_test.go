package usecase_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	recordout "studytrack/internal/modules/record/adapter/out"
	"studytrack/internal/modules/record/domain"
	"studytrack/internal/modules/record/dto"
	recordin "studytrack/internal/modules/record/port/in"
	recordport "studytrack/internal/modules/record/port/out"
	"studytrack/internal/modules/record/service"
	"studytrack/internal/modules/record/usecase"
	apperrors "studytrack/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type failingStore struct {
	inner recordport.StateStore
	fail  bool
}

func (f *failingStore) Load(ctx context.Context) (domain.State, error) { return f.inner.Load(ctx) }

func (f *failingStore) Save(ctx context.Context, state domain.State) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.inner.Save(ctx, state)
}

func newInteractor(t *testing.T, docPath string) recordin.Usecase {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)}
	svc, err := service.NewRecordService(context.Background(), clk, recordout.NewFileStateStore(docPath), service.WithPicker(func(int) int { return 2 }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return usecase.NewInteractor(svc)
}

func TestAssignmentIDsAreSequentialAndPending(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		res, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: "A", Subject: "Math", DeadlineDays: i})
		if err != nil {
			t.Fatalf("add assignment %d: %v", i, err)
		}
		if !res.OK || res.Assignment.ID != i || res.Assignment.Status != "Pending" {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.Assignment.Difficulty != "Medium" {
			t.Fatalf("default difficulty = %q", res.Assignment.Difficulty)
		}
	}
}

func TestAddProjectDefaultsToInProgressWithZeroProgress(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()

	res, err := uc.AddProject(ctx, dto.AddProjectInput{Title: "Robot", Description: "line follower", DeadlineDays: 14})
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	p := res.Project
	if !res.OK || p.ID != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if p.Status != "In Progress" || p.Progress != 0 {
		t.Fatalf("status = %q progress = %d, want In Progress and 0", p.Status, p.Progress)
	}
	if p.Deadline != "2026-03-24" || p.CreatedDate != "2026-03-10" {
		t.Fatalf("deadline = %q created = %q", p.Deadline, p.CreatedDate)
	}
	listed, _ := uc.ListProjects(ctx)
	if len(listed) != 1 || listed[0].Status != "In Progress" || listed[0].Progress != 0 {
		t.Fatalf("listed projects = %+v", listed)
	}
}

func TestCompleteUnknownAssignmentIsSoftFailure(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()
	if _, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: "Essay", Subject: "History", DeadlineDays: 2, Difficulty: "hard"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, _ := uc.ListAssignments(ctx)

	res, err := uc.CompleteAssignment(ctx, dto.CompleteAssignmentInput{ID: 42, Score: 90})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.OK || res.Reason != dto.ReasonNotFound {
		t.Fatalf("expected not found result, got %+v", res)
	}
	after, _ := uc.ListAssignments(ctx)
	if len(after) != len(before) || after[0].Status != "Pending" || after[0].Score != nil {
		t.Fatalf("collection changed: %+v", after)
	}

	res, err = uc.CompleteAssignment(ctx, dto.CompleteAssignmentInput{ID: 1, Score: 77})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.OK || res.Assignment.Status != "Completed" || res.Assignment.Score == nil || *res.Assignment.Score != 77 {
		t.Fatalf("unexpected completion %+v", res)
	}
}

func TestLogStudySessionAccumulatesHours(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()

	durations := []struct {
		subject string
		hours   float64
	}{{"Math", 0.1}, {"Physics", 0.2}, {"Math", 1.25}, {"Art", 2}}
	want := 0.0
	for i, d := range durations {
		res, err := uc.LogStudySession(ctx, dto.LogSessionInput{Subject: d.subject, DurationHours: d.hours})
		if err != nil {
			t.Fatalf("log: %v", err)
		}
		want += d.hours
		if math.Abs(res.TotalStudyHours-want) > 1e-9 {
			t.Fatalf("total = %v, want %v", res.TotalStudyHours, want)
		}
		sessions, _ := uc.ListSessions(ctx)
		if len(sessions) != i+1 {
			t.Fatalf("sessions = %d, want %d", len(sessions), i+1)
		}
	}

	analytics, err := uc.GetStudyAnalytics(ctx)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if math.Abs(analytics.SubjectWiseHours["Math"]-1.35) > 1e-9 || analytics.SubjectWiseHours["Physics"] != 0.2 || analytics.SubjectWiseHours["Art"] != 2 {
		t.Fatalf("unexpected subject hours %v", analytics.SubjectWiseHours)
	}
}

func TestAverageScore(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()

	analytics, _ := uc.GetStudyAnalytics(ctx)
	if analytics.AvgScore != 0 {
		t.Fatalf("avg score without scores = %v", analytics.AvgScore)
	}
	for _, score := range []int{90, 60} {
		added, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: "T", Subject: "S"})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := uc.CompleteAssignment(ctx, dto.CompleteAssignmentInput{ID: added.Assignment.ID, Score: score}); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}
	analytics, _ = uc.GetStudyAnalytics(ctx)
	if analytics.AvgScore != 75 {
		t.Fatalf("avg score = %v, want 75", analytics.AvgScore)
	}
}

func TestPendingSuggestionWithoutScoreBand(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: "T", Subject: "S"}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	suggestions, err := uc.GetSuggestions(ctx)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	cited := false
	for _, s := range suggestions {
		if s.Kind == string(domain.SuggestPending) && strings.Contains(s.Text, "3") && s.Count == 3 {
			cited = true
		}
		if s.Kind == string(domain.SuggestLowScores) || s.Kind == string(domain.SuggestHighScores) {
			t.Fatalf("unexpected score band suggestion %+v", s)
		}
	}
	if !cited {
		t.Fatalf("pending count not cited: %+v", suggestions)
	}
}

func TestStateSurvivesReload(t *testing.T) {
	t.Parallel()
	docPath := filepath.Join(t.TempDir(), "student_data.json")
	uc := newInteractor(t, docPath)
	ctx := context.Background()

	if _, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: "Essay", Subject: "History", DeadlineDays: 3}); err != nil {
		t.Fatalf("add assignment: %v", err)
	}
	if _, err := uc.AddWork(ctx, dto.AddWorkInput{Title: "Worksheet", Subject: "Math", DurationHours: 1, Completed: true}); err != nil {
		t.Fatalf("add work: %v", err)
	}
	if _, err := uc.AddProject(ctx, dto.AddProjectInput{Title: "Robot", Description: "line follower", DeadlineDays: 30, Status: "planning"}); err != nil {
		t.Fatalf("add project: %v", err)
	}
	if _, err := uc.LogStudySession(ctx, dto.LogSessionInput{Subject: "Math", DurationHours: 1.5, Topics: "limits"}); err != nil {
		t.Fatalf("log: %v", err)
	}
	if _, err := uc.AddTimetableEntry(ctx, dto.AddTimetableEntryInput{Day: "tuesday", Time: "10:00", Subject: "Math", DurationHours: 1}); err != nil {
		t.Fatalf("timetable: %v", err)
	}
	before, _ := uc.GetDashboard(ctx)

	reloaded := newInteractor(t, docPath)
	after, err := reloaded.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if after.Analytics.TotalStudyHours != before.Analytics.TotalStudyHours || after.Analytics.CurrentStreak != before.Analytics.CurrentStreak {
		t.Fatalf("aggregates differ: %+v vs %+v", after.Analytics, before.Analytics)
	}
	works, _ := reloaded.ListWorks(ctx)
	projects, _ := reloaded.ListProjects(ctx)
	sessions, _ := reloaded.ListSessions(ctx)
	timetable, _ := reloaded.GetTimetable(ctx, "")
	if len(after.RecentAssignments) != 1 || len(works) != 1 || len(projects) != 1 || len(sessions) != 1 || len(timetable) != 1 {
		t.Fatalf("collections not restored")
	}
	if projects[0].Status != "Planning" || timetable[0].Day != "Tuesday" || sessions[0].Topics != "limits" {
		t.Fatalf("fields not restored: %+v %+v %+v", projects[0], timetable[0], sessions[0])
	}
}

func TestTimetableKeepsInsertionOrderWithinDay(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()
	entries := []dto.AddTimetableEntryInput{
		{Day: "Friday", Time: "08:00", Subject: "Chemistry", DurationHours: 1},
		{Day: "Monday", Time: "14:00", Subject: "Math", DurationHours: 1},
		{Day: "Monday", Time: "09:00", Subject: "Biology", DurationHours: 2},
	}
	for _, e := range entries {
		if _, err := uc.AddTimetableEntry(ctx, e); err != nil {
			t.Fatalf("add entry: %v", err)
		}
	}
	monday, err := uc.GetTimetable(ctx, "monday")
	if err != nil {
		t.Fatalf("timetable: %v", err)
	}
	if len(monday) != 2 || monday[0].Subject != "Math" || monday[1].Subject != "Biology" {
		t.Fatalf("unexpected monday order: %+v", monday)
	}
	all, _ := uc.GetTimetable(ctx, "")
	if all[0].Day != "Monday" || all[2].Day != "Friday" {
		t.Fatalf("days not in weekday order: %+v", all)
	}
}

func TestInvalidEnumInputsAreRejected(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()

	if _, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: "T", Difficulty: "Brutal"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid difficulty, got %v", err)
	}
	if _, err := uc.AddProject(ctx, dto.AddProjectInput{Title: "P", Status: "Done"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if _, err := uc.AddTimetableEntry(ctx, dto.AddTimetableEntryInput{Day: "Funday", Time: "09:00"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid day, got %v", err)
	}
	if _, err := uc.GetTimetable(ctx, "Funday"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid day filter, got %v", err)
	}
	assignments, _ := uc.ListAssignments(ctx)
	projects, _ := uc.ListProjects(ctx)
	timetable, _ := uc.GetTimetable(ctx, "")
	if len(assignments)+len(projects)+len(timetable) != 0 {
		t.Fatalf("rejected inputs mutated state")
	}
}

func TestFailedWriteKeepsPreviousState(t *testing.T) {
	t.Parallel()
	store := &failingStore{inner: recordout.NewFileStateStore(filepath.Join(t.TempDir(), "student_data.json"))}
	svc, err := service.NewRecordService(context.Background(), &fakeClock{now: time.Now()}, store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	uc := usecase.NewInteractor(svc)
	ctx := context.Background()

	store.fail = true
	if _, err := uc.LogStudySession(ctx, dto.LogSessionInput{Subject: "Math", DurationHours: 2}); err == nil {
		t.Fatalf("expected write error")
	}
	analytics, _ := uc.GetStudyAnalytics(ctx)
	if analytics.TotalStudyHours != 0 || analytics.CurrentStreak != 0 {
		t.Fatalf("memory ran ahead of disk: %+v", analytics)
	}
}

func TestDashboardShape(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, filepath.Join(t.TempDir(), "student_data.json"))
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		if _, err := uc.AddAssignment(ctx, dto.AddAssignmentInput{Title: string(rune('A' + i)), Subject: "S"}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	dash, err := uc.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.StudentName != "Student" || len(dash.RecentAssignments) != 5 || dash.RecentAssignments[0].Title != "C" {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
	if !strings.Contains(dash.Encouragement, "Student") {
		t.Fatalf("encouragement lacks name: %q", dash.Encouragement)
	}
	tips, err := uc.GetLearningTips(ctx)
	if err != nil {
		t.Fatalf("tips: %v", err)
	}
	if len(dash.Tips) != 8 || len(tips) != len(dash.Tips) || dash.Tips[2] != tips[2] || tips[2].Title != "Active Recall" {
		t.Fatalf("unexpected tips: dashboard=%+v usecase=%+v", dash.Tips, tips)
	}

	doctor, err := uc.Doctor(ctx)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !doctor.OK || doctor.Drift != 0 {
		t.Fatalf("unexpected doctor report: %+v", doctor)
	}
}
