package domain

import "time"

const (
	// DailyWindow and SuggestionWindow count log entries, not calendar days.
	DailyWindow      = 30
	SuggestionWindow = 7
)

type Analytics struct {
	TotalStudyHours      float64
	CurrentStreak        int
	ConsecutiveDays      int
	TotalAssignments     int
	CompletedAssignments int
	PendingAssignments   int
	TotalProjects        int
	TotalWorks           int
	CompletedWorks       int
	SubjectWiseHours     map[string]float64
	DailyStudy           map[string]float64
	AvgScore             float64
}

func ComputeAnalytics(s State, today time.Time) Analytics {
	out := Analytics{
		TotalStudyHours:  s.TotalStudyHours,
		CurrentStreak:    s.Streak,
		ConsecutiveDays:  ConsecutiveDays(s.StudyLog, today),
		TotalAssignments: len(s.Assignments),
		TotalProjects:    len(s.Projects),
		TotalWorks:       len(s.Works),
		SubjectWiseHours: SubjectHours(s.StudyLog),
		DailyStudy:       map[string]float64{},
	}
	for _, a := range s.Assignments {
		switch a.Status {
		case StatusCompleted:
			out.CompletedAssignments++
		case StatusPending:
			out.PendingAssignments++
		}
	}
	for _, w := range s.Works {
		if w.Completed {
			out.CompletedWorks++
		}
	}
	for _, session := range LastSessions(s.StudyLog, DailyWindow) {
		out.DailyStudy[session.Date] += session.DurationHours
	}
	out.AvgScore = AverageScore(s.Assignments)
	return out
}

// AverageScore averages non-zero scores. A score of 0 cannot be told apart
// from a missing one and is left out.
func AverageScore(assignments []Assignment) float64 {
	total, n := 0, 0
	for _, a := range assignments {
		if score := a.ScoreValue(); score != 0 {
			total += score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func SubjectHours(log []StudySession) map[string]float64 {
	out := map[string]float64{}
	for _, session := range log {
		out[session.Subject] += session.DurationHours
	}
	return out
}

// LastSessions returns the trailing n entries in insertion order.
func LastSessions(log []StudySession, n int) []StudySession {
	if len(log) <= n {
		return log
	}
	return log[len(log)-n:]
}
