package in

import (
	"context"

	"studytrack/internal/modules/record/dto"
	recordin "studytrack/internal/modules/record/port/in"
)

type CLIHandler struct {
	usecase recordin.Usecase
}

func NewCLIHandler(usecase recordin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddAssignment(ctx context.Context, title, subject string, deadlineDays int, difficulty string) (dto.AssignmentResult, error) {
	return h.usecase.AddAssignment(ctx, dto.AddAssignmentInput{
		Title:        title,
		Subject:      subject,
		DeadlineDays: deadlineDays,
		Difficulty:   difficulty,
	})
}

func (h CLIHandler) CompleteAssignment(ctx context.Context, id, score int) (dto.AssignmentResult, error) {
	return h.usecase.CompleteAssignment(ctx, dto.CompleteAssignmentInput{ID: id, Score: score})
}

func (h CLIHandler) AddWork(ctx context.Context, title, subject string, hours float64, completed bool) (dto.WorkResult, error) {
	return h.usecase.AddWork(ctx, dto.AddWorkInput{Title: title, Subject: subject, DurationHours: hours, Completed: completed})
}

func (h CLIHandler) AddProject(ctx context.Context, title, description string, deadlineDays int, status string) (dto.ProjectResult, error) {
	return h.usecase.AddProject(ctx, dto.AddProjectInput{
		Title:        title,
		Description:  description,
		DeadlineDays: deadlineDays,
		Status:       status,
	})
}

func (h CLIHandler) LogSession(ctx context.Context, subject string, hours float64, topics string) (dto.SessionResult, error) {
	return h.usecase.LogStudySession(ctx, dto.LogSessionInput{Subject: subject, DurationHours: hours, Topics: topics})
}

func (h CLIHandler) AddTimetableEntry(ctx context.Context, day, at, subject string, hours float64) (dto.TimetableResult, error) {
	return h.usecase.AddTimetableEntry(ctx, dto.AddTimetableEntryInput{Day: day, Time: at, Subject: subject, DurationHours: hours})
}

func (h CLIHandler) ListAssignments(ctx context.Context) ([]dto.AssignmentOutput, error) {
	return h.usecase.ListAssignments(ctx)
}

func (h CLIHandler) ListWorks(ctx context.Context) ([]dto.WorkOutput, error) {
	return h.usecase.ListWorks(ctx)
}

func (h CLIHandler) ListProjects(ctx context.Context) ([]dto.ProjectOutput, error) {
	return h.usecase.ListProjects(ctx)
}

func (h CLIHandler) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx)
}

func (h CLIHandler) Timetable(ctx context.Context, day string) ([]dto.TimetableEntryOutput, error) {
	return h.usecase.GetTimetable(ctx, day)
}

func (h CLIHandler) Analytics(ctx context.Context) (dto.AnalyticsOutput, error) {
	return h.usecase.GetStudyAnalytics(ctx)
}

func (h CLIHandler) Suggestions(ctx context.Context) ([]dto.SuggestionOutput, error) {
	return h.usecase.GetSuggestions(ctx)
}

func (h CLIHandler) Tips(ctx context.Context) ([]dto.TipOutput, error) {
	return h.usecase.GetLearningTips(ctx)
}

func (h CLIHandler) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	return h.usecase.GetDashboard(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
