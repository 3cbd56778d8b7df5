package usecase

import (
	"context"
	"fmt"
	"strings"

	"studytrack/internal/modules/record/domain"
	"studytrack/internal/modules/record/dto"
	recordin "studytrack/internal/modules/record/port/in"
	"studytrack/internal/modules/record/service"
	apperrors "studytrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordin.Usecase {
	return &Interactor{svc: svc}
}

var ok = dto.Result{OK: true}

func (i *Interactor) AddAssignment(ctx context.Context, input dto.AddAssignmentInput) (dto.AssignmentResult, error) {
	difficulty, err := domain.ParseDifficulty(input.Difficulty)
	if err != nil {
		return dto.AssignmentResult{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	a, err := i.svc.AddAssignment(ctx, input.Title, input.Subject, input.DeadlineDays, difficulty)
	if err != nil {
		return dto.AssignmentResult{}, err
	}
	return dto.AssignmentResult{Result: ok, Assignment: assignmentOutput(a)}, nil
}

func (i *Interactor) CompleteAssignment(ctx context.Context, input dto.CompleteAssignmentInput) (dto.AssignmentResult, error) {
	a, found, err := i.svc.CompleteAssignment(ctx, input.ID, input.Score)
	if err != nil {
		return dto.AssignmentResult{}, err
	}
	if !found {
		return dto.AssignmentResult{Result: dto.Result{Reason: dto.ReasonNotFound}}, nil
	}
	return dto.AssignmentResult{Result: ok, Assignment: assignmentOutput(a)}, nil
}

func (i *Interactor) AddWork(ctx context.Context, input dto.AddWorkInput) (dto.WorkResult, error) {
	w, err := i.svc.AddWork(ctx, input.Title, input.Subject, input.DurationHours, input.Completed)
	if err != nil {
		return dto.WorkResult{}, err
	}
	return dto.WorkResult{Result: ok, Work: workOutput(w)}, nil
}

func (i *Interactor) AddProject(ctx context.Context, input dto.AddProjectInput) (dto.ProjectResult, error) {
	status, err := domain.ParseProjectStatus(input.Status)
	if err != nil {
		return dto.ProjectResult{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	p, err := i.svc.AddProject(ctx, input.Title, input.Description, input.DeadlineDays, status)
	if err != nil {
		return dto.ProjectResult{}, err
	}
	return dto.ProjectResult{Result: ok, Project: projectOutput(p)}, nil
}

func (i *Interactor) LogStudySession(ctx context.Context, input dto.LogSessionInput) (dto.SessionResult, error) {
	session, state, notePath, err := i.svc.LogStudySession(ctx, input.Subject, input.DurationHours, input.Topics)
	if err != nil {
		return dto.SessionResult{}, err
	}
	return dto.SessionResult{
		Result:          ok,
		Session:         sessionOutput(session),
		TotalStudyHours: state.TotalStudyHours,
		Streak:          state.Streak,
		JournalPath:     notePath,
	}, nil
}

func (i *Interactor) AddTimetableEntry(ctx context.Context, input dto.AddTimetableEntryInput) (dto.TimetableResult, error) {
	day, err := domain.ParseWeekday(input.Day)
	if err != nil {
		return dto.TimetableResult{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	entry, err := i.svc.AddTimetableEntry(ctx, day, input.Time, input.Subject, input.DurationHours)
	if err != nil {
		return dto.TimetableResult{}, err
	}
	return dto.TimetableResult{Result: ok, Entry: timetableOutput(entry)}, nil
}

func (i *Interactor) ListAssignments(context.Context) ([]dto.AssignmentOutput, error) {
	state := i.svc.Snapshot()
	out := make([]dto.AssignmentOutput, 0, len(state.Assignments))
	for _, a := range state.Assignments {
		out = append(out, assignmentOutput(a))
	}
	return out, nil
}

func (i *Interactor) ListWorks(context.Context) ([]dto.WorkOutput, error) {
	state := i.svc.Snapshot()
	out := make([]dto.WorkOutput, 0, len(state.Works))
	for _, w := range state.Works {
		out = append(out, workOutput(w))
	}
	return out, nil
}

func (i *Interactor) ListProjects(context.Context) ([]dto.ProjectOutput, error) {
	return projectOutputs(i.svc.Snapshot().Projects), nil
}

func (i *Interactor) ListSessions(context.Context) ([]dto.SessionOutput, error) {
	state := i.svc.Snapshot()
	out := make([]dto.SessionOutput, 0, len(state.StudyLog))
	for _, s := range state.StudyLog {
		out = append(out, sessionOutput(s))
	}
	return out, nil
}

// GetTimetable lists every entry in weekday order, or only day's entries when
// day is set.
func (i *Interactor) GetTimetable(_ context.Context, day string) ([]dto.TimetableEntryOutput, error) {
	entries := i.svc.Snapshot().Entries()
	if strings.TrimSpace(day) == "" {
		return timetableOutputs(entries), nil
	}
	want, err := domain.ParseWeekday(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	filtered := []domain.TimetableEntry{}
	for _, e := range entries {
		if e.Day == want {
			filtered = append(filtered, e)
		}
	}
	return timetableOutputs(filtered), nil
}

func (i *Interactor) GetStudyAnalytics(context.Context) (dto.AnalyticsOutput, error) {
	return analyticsOutput(i.svc.Analytics()), nil
}

func (i *Interactor) GetSuggestions(context.Context) ([]dto.SuggestionOutput, error) {
	return suggestionOutputs(i.svc.Suggestions()), nil
}

func (i *Interactor) GetEncouragement(context.Context) (string, error) {
	return i.svc.Encouragement(), nil
}

func (i *Interactor) GetLearningTips(context.Context) ([]dto.TipOutput, error) {
	return tipOutputs(domain.LearningTips()), nil
}

func (i *Interactor) GetDashboard(context.Context) (dto.DashboardOutput, error) {
	d := i.svc.Dashboard()
	recent := make([]dto.AssignmentOutput, 0, len(d.RecentAssignments))
	for _, a := range d.RecentAssignments {
		recent = append(recent, assignmentOutput(a))
	}
	return dto.DashboardOutput{
		StudentName:       d.StudentName,
		Analytics:         analyticsOutput(d.Analytics),
		Suggestions:       suggestionOutputs(d.Suggestions),
		Encouragement:     d.Encouragement,
		RecentAssignments: recent,
		Projects:          projectOutputs(d.Projects),
		Timetable:         timetableOutputs(d.Timetable),
		Tips:              tipOutputs(d.Tips),
	}, nil
}

func tipOutputs(tips []domain.LearningTip) []dto.TipOutput {
	out := make([]dto.TipOutput, 0, len(tips))
	for _, t := range tips {
		out = append(out, dto.TipOutput{Title: t.Title, Detail: t.Detail})
	}
	return out
}

func (i *Interactor) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	h, err := i.svc.Doctor(ctx)
	if err != nil {
		return dto.DoctorOutput{}, err
	}
	return dto.DoctorOutput{
		Sessions:         h.Sessions,
		RecordedHours:    h.RecordedHours,
		ComputedHours:    h.ComputedHours,
		Drift:            h.Drift(),
		ProjectionHours:  h.ProjectionHours,
		ProjectionInSync: h.ProjectionInSync,
		OK:               h.OK(),
	}, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func assignmentOutput(a domain.Assignment) dto.AssignmentOutput {
	return dto.AssignmentOutput{
		ID:             a.ID,
		Title:          a.Title,
		Subject:        a.Subject,
		Deadline:       a.Deadline,
		Difficulty:     string(a.Difficulty),
		Status:         string(a.Status),
		CreatedDate:    a.CreatedDate,
		Score:          a.Score,
		CompletionDate: a.CompletionDate,
	}
}

func workOutput(w domain.Work) dto.WorkOutput {
	return dto.WorkOutput{
		ID:            w.ID,
		Title:         w.Title,
		Subject:       w.Subject,
		DurationHours: w.DurationHours,
		Completed:     w.Completed,
		Date:          w.Date,
		Timestamp:     w.Timestamp,
	}
}

func projectOutputs(projects []domain.Project) []dto.ProjectOutput {
	out := make([]dto.ProjectOutput, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectOutput(p))
	}
	return out
}

func projectOutput(p domain.Project) dto.ProjectOutput {
	return dto.ProjectOutput{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Deadline:    p.Deadline,
		Status:      string(p.Status),
		Progress:    p.Progress,
		CreatedDate: p.CreatedDate,
	}
}

func sessionOutput(s domain.StudySession) dto.SessionOutput {
	return dto.SessionOutput{
		Date:          s.Date,
		Timestamp:     s.Timestamp,
		Subject:       s.Subject,
		DurationHours: s.DurationHours,
		Topics:        s.Topics,
	}
}

func timetableOutput(e domain.TimetableEntry) dto.TimetableEntryOutput {
	return dto.TimetableEntryOutput{Day: string(e.Day), Time: e.Time, Subject: e.Subject, DurationHours: e.DurationHours}
}

func timetableOutputs(entries []domain.TimetableEntry) []dto.TimetableEntryOutput {
	out := make([]dto.TimetableEntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, timetableOutput(e))
	}
	return out
}

func analyticsOutput(a domain.Analytics) dto.AnalyticsOutput {
	return dto.AnalyticsOutput{
		TotalStudyHours:      a.TotalStudyHours,
		CurrentStreak:        a.CurrentStreak,
		ConsecutiveDays:      a.ConsecutiveDays,
		TotalAssignments:     a.TotalAssignments,
		CompletedAssignments: a.CompletedAssignments,
		PendingAssignments:   a.PendingAssignments,
		TotalProjects:        a.TotalProjects,
		TotalWorks:           a.TotalWorks,
		CompletedWorks:       a.CompletedWorks,
		SubjectWiseHours:     a.SubjectWiseHours,
		DailyStudy:           a.DailyStudy,
		AvgScore:             a.AvgScore,
	}
}

func suggestionOutputs(suggestions []domain.Suggestion) []dto.SuggestionOutput {
	out := make([]dto.SuggestionOutput, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestionOutput{Kind: string(s.Kind), Text: s.Text, Count: s.Count, Subject: s.Subject})
	}
	return out
}
