package out

import (
	"context"

	recorddto "studytrack/internal/modules/record/dto"
	recordin "studytrack/internal/modules/record/port/in"
	"studytrack/internal/modules/report/domain"
	reportout "studytrack/internal/modules/report/port/out"
)

type RecordSourceAdapter struct {
	records recordin.Usecase
}

func NewRecordSourceAdapter(records recordin.Usecase) reportout.RecordSource {
	return &RecordSourceAdapter{records: records}
}

func (a *RecordSourceAdapter) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	dash, err := a.records.GetDashboard(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	assignments, err := a.records.ListAssignments(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	works, err := a.records.ListWorks(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	sessions, err := a.records.ListSessions(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	snap := domain.Snapshot{
		Student:       dash.StudentName,
		Encouragement: dash.Encouragement,
		Totals: domain.Totals{
			TotalStudyHours:      dash.Analytics.TotalStudyHours,
			Streak:               dash.Analytics.CurrentStreak,
			ConsecutiveDays:      dash.Analytics.ConsecutiveDays,
			TotalAssignments:     dash.Analytics.TotalAssignments,
			CompletedAssignments: dash.Analytics.CompletedAssignments,
			PendingAssignments:   dash.Analytics.PendingAssignments,
			TotalProjects:        dash.Analytics.TotalProjects,
			TotalWorks:           dash.Analytics.TotalWorks,
			CompletedWorks:       dash.Analytics.CompletedWorks,
			AvgScore:             dash.Analytics.AvgScore,
			SubjectHours:         dash.Analytics.SubjectWiseHours,
			DailyStudy:           dash.Analytics.DailyStudy,
		},
		Suggestions:       make([]string, 0, len(dash.Suggestions)),
		RecentAssignments: toAssignments(dash.RecentAssignments),
		Assignments:       toAssignments(assignments),
		Works:             make([]domain.Work, 0, len(works)),
		Projects:          make([]domain.Project, 0, len(dash.Projects)),
		Sessions:          make([]domain.Session, 0, len(sessions)),
		Timetable:         make([]domain.Slot, 0, len(dash.Timetable)),
	}
	for _, s := range dash.Suggestions {
		snap.Suggestions = append(snap.Suggestions, s.Text)
	}
	for _, w := range works {
		snap.Works = append(snap.Works, domain.Work{ID: w.ID, Title: w.Title, Subject: w.Subject, DurationHours: w.DurationHours, Completed: w.Completed, Date: w.Date})
	}
	for _, p := range dash.Projects {
		snap.Projects = append(snap.Projects, domain.Project{ID: p.ID, Title: p.Title, Description: p.Description, Deadline: p.Deadline, Status: p.Status, Progress: p.Progress})
	}
	for _, s := range sessions {
		snap.Sessions = append(snap.Sessions, domain.Session{Date: s.Date, Timestamp: s.Timestamp, Subject: s.Subject, DurationHours: s.DurationHours, Topics: s.Topics})
	}
	for _, e := range dash.Timetable {
		snap.Timetable = append(snap.Timetable, domain.Slot{Day: e.Day, Time: e.Time, Subject: e.Subject, DurationHours: e.DurationHours})
	}
	return snap, nil
}

func toAssignments(in []recorddto.AssignmentOutput) []domain.Assignment {
	out := make([]domain.Assignment, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Assignment{
			ID:             a.ID,
			Title:          a.Title,
			Subject:        a.Subject,
			Deadline:       a.Deadline,
			Difficulty:     a.Difficulty,
			Status:         a.Status,
			Score:          a.Score,
			CompletionDate: a.CompletionDate,
		})
	}
	return out
}
