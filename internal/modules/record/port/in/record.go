package in

import (
	"context"

	"studytrack/internal/modules/record/dto"
)

type Usecase interface {
	AddAssignment(ctx context.Context, input dto.AddAssignmentInput) (dto.AssignmentResult, error)
	CompleteAssignment(ctx context.Context, input dto.CompleteAssignmentInput) (dto.AssignmentResult, error)
	AddWork(ctx context.Context, input dto.AddWorkInput) (dto.WorkResult, error)
	AddProject(ctx context.Context, input dto.AddProjectInput) (dto.ProjectResult, error)
	LogStudySession(ctx context.Context, input dto.LogSessionInput) (dto.SessionResult, error)
	AddTimetableEntry(ctx context.Context, input dto.AddTimetableEntryInput) (dto.TimetableResult, error)

	ListAssignments(ctx context.Context) ([]dto.AssignmentOutput, error)
	ListWorks(ctx context.Context) ([]dto.WorkOutput, error)
	ListProjects(ctx context.Context) ([]dto.ProjectOutput, error)
	ListSessions(ctx context.Context) ([]dto.SessionOutput, error)
	GetTimetable(ctx context.Context, day string) ([]dto.TimetableEntryOutput, error)

	GetStudyAnalytics(ctx context.Context) (dto.AnalyticsOutput, error)
	GetSuggestions(ctx context.Context) ([]dto.SuggestionOutput, error)
	GetEncouragement(ctx context.Context) (string, error)
	GetLearningTips(ctx context.Context) ([]dto.TipOutput, error)
	GetDashboard(ctx context.Context) (dto.DashboardOutput, error)

	Doctor(ctx context.Context) (dto.DoctorOutput, error)
	Reindex(ctx context.Context) error
}
