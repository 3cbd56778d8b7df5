package dto

// ReasonNotFound marks a soft failure where the target record does not exist.
const ReasonNotFound = "not_found"

type AddAssignmentInput struct {
	Title        string
	Subject      string
	DeadlineDays int
	Difficulty   string
}

type CompleteAssignmentInput struct {
	ID    int
	Score int
}

type AddWorkInput struct {
	Title         string
	Subject       string
	DurationHours float64
	Completed     bool
}

type AddProjectInput struct {
	Title        string
	Description  string
	DeadlineDays int
	Status       string
}

type LogSessionInput struct {
	Subject       string
	DurationHours float64
	Topics        string
}

type AddTimetableEntryInput struct {
	Day           string
	Time          string
	Subject       string
	DurationHours float64
}

// Result is the outcome shared by every mutation. OK is false only for soft
// failures; Reason then names the cause.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

type AssignmentOutput struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Subject        string `json:"subject"`
	Deadline       string `json:"deadline"`
	Difficulty     string `json:"difficulty"`
	Status         string `json:"status"`
	CreatedDate    string `json:"created_date"`
	Score          *int   `json:"score,omitempty"`
	CompletionDate string `json:"completion_date,omitempty"`
}

type AssignmentResult struct {
	Result
	Assignment AssignmentOutput `json:"assignment"`
}

type WorkOutput struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration_hours"`
	Completed     bool    `json:"completed"`
	Date          string  `json:"date"`
	Timestamp     string  `json:"timestamp"`
}

type WorkResult struct {
	Result
	Work WorkOutput `json:"work"`
}

type ProjectOutput struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	CreatedDate string `json:"created_date"`
}

type ProjectResult struct {
	Result
	Project ProjectOutput `json:"project"`
}

type SessionOutput struct {
	Date          string  `json:"date"`
	Timestamp     string  `json:"timestamp"`
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration_hours"`
	Topics        string  `json:"topics"`
}

type SessionResult struct {
	Result
	Session         SessionOutput `json:"session"`
	TotalStudyHours float64       `json:"total_study_hours"`
	Streak          int           `json:"streak"`
	JournalPath     string        `json:"journal_path,omitempty"`
}

type TimetableEntryOutput struct {
	Day           string  `json:"day"`
	Time          string  `json:"time"`
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration_hours"`
}

type TimetableResult struct {
	Result
	Entry TimetableEntryOutput `json:"entry"`
}

type AnalyticsOutput struct {
	TotalStudyHours      float64            `json:"total_study_hours"`
	CurrentStreak        int                `json:"current_streak"`
	ConsecutiveDays      int                `json:"consecutive_days"`
	TotalAssignments     int                `json:"total_assignments"`
	CompletedAssignments int                `json:"completed_assignments"`
	PendingAssignments   int                `json:"pending_assignments"`
	TotalProjects        int                `json:"total_projects"`
	TotalWorks           int                `json:"total_works"`
	CompletedWorks       int                `json:"completed_works"`
	SubjectWiseHours     map[string]float64 `json:"subject_wise_hours"`
	DailyStudy           map[string]float64 `json:"daily_study"`
	AvgScore             float64            `json:"avg_score"`
}

type SuggestionOutput struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Count   int    `json:"count,omitempty"`
	Subject string `json:"subject,omitempty"`
}

type DashboardOutput struct {
	StudentName       string                 `json:"student_name"`
	Analytics         AnalyticsOutput        `json:"analytics"`
	Suggestions       []SuggestionOutput     `json:"suggestions"`
	Encouragement     string                 `json:"encouragement"`
	RecentAssignments []AssignmentOutput     `json:"assignments"`
	Projects          []ProjectOutput        `json:"projects"`
	Timetable         []TimetableEntryOutput `json:"timetable"`
	Tips              []TipOutput            `json:"learning_tips"`
}

type TipOutput struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type DoctorOutput struct {
	Sessions         int     `json:"sessions"`
	RecordedHours    float64 `json:"recorded_hours"`
	ComputedHours    float64 `json:"computed_hours"`
	Drift            float64 `json:"drift"`
	ProjectionHours  float64 `json:"projection_hours"`
	ProjectionInSync bool    `json:"projection_in_sync"`
	OK               bool    `json:"ok"`
}
