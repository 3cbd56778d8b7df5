package domain

const RecentAssignments = 5

type Dashboard struct {
	StudentName       string
	Analytics         Analytics
	Suggestions       []Suggestion
	Encouragement     string
	RecentAssignments []Assignment
	Projects          []Project
	Timetable         []TimetableEntry
	Tips              []LearningTip
}

// LastAssignments returns the trailing n assignments by insertion order.
func LastAssignments(assignments []Assignment, n int) []Assignment {
	if len(assignments) <= n {
		return assignments
	}
	return assignments[len(assignments)-n:]
}
