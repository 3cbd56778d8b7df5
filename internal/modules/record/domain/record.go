package domain

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
	ClockLayout     = "15:04"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "Pending"
	StatusCompleted AssignmentStatus = "Completed"
)

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectReview     ProjectStatus = "Review"
)

var ProjectStatuses = []ProjectStatus{ProjectInProgress, ProjectPlanning, ProjectReview}

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays is the display order of the timetable.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDifficulty matches s against the closed set, ignoring case. An empty
// string selects Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	if strings.TrimSpace(s) == "" {
		return DifficultyMedium, nil
	}
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unsupported difficulty %q", s)
}

// ParseProjectStatus matches s against the closed set, ignoring case. An
// empty string selects In Progress.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	if strings.TrimSpace(s) == "" {
		return ProjectInProgress, nil
	}
	for _, st := range ProjectStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unsupported project status %q", s)
}

func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unsupported day %q", s)
}

type Assignment struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Subject        string           `json:"subject"`
	Deadline       string           `json:"deadline"`
	Difficulty     Difficulty       `json:"difficulty"`
	Status         AssignmentStatus `json:"status"`
	CreatedDate    string           `json:"created_date"`
	Score          *int             `json:"score,omitempty"`
	CompletionDate string           `json:"completion_date,omitempty"`
}

// ScoreValue reports the score, or 0 when none was recorded.
func (a Assignment) ScoreValue() int {
	if a.Score == nil {
		return 0
	}
	return *a.Score
}

type Work struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration_hours"`
	Completed     bool    `json:"completed"`
	Date          string  `json:"date"`
	Timestamp     string  `json:"timestamp"`
}

type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Deadline    string        `json:"deadline"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	CreatedDate string        `json:"created_date"`
}

type StudySession struct {
	Date          string  `json:"date"`
	Timestamp     string  `json:"timestamp"`
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration_hours"`
	Topics        string  `json:"topics"`
}

// Slot is a timetable entry as stored under its day.
type Slot struct {
	Time          string  `json:"time"`
	Subject       string  `json:"subject"`
	DurationHours float64 `json:"duration"`
}

type TimetableEntry struct {
	Day Weekday
	Slot
}

// State is the whole persisted document.
type State struct {
	Assignments     []Assignment       `json:"assignments"`
	Works           []Work             `json:"works"`
	Projects        []Project          `json:"projects"`
	StudyLog        []StudySession     `json:"study_log"`
	Timetable       map[Weekday][]Slot `json:"timetable"`
	Streak          int                `json:"streak"`
	TotalStudyHours float64            `json:"total_study_hours"`
}

func NewState() State {
	return State{
		Assignments: []Assignment{},
		Works:       []Work{},
		Projects:    []Project{},
		StudyLog:    []StudySession{},
		Timetable:   map[Weekday][]Slot{},
	}
}

// Normalize replaces nil collections so the document always carries every key.
func (s *State) Normalize() {
	if s.Assignments == nil {
		s.Assignments = []Assignment{}
	}
	if s.Works == nil {
		s.Works = []Work{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.StudyLog == nil {
		s.StudyLog = []StudySession{}
	}
	if s.Timetable == nil {
		s.Timetable = map[Weekday][]Slot{}
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := State{
		Assignments:     make([]Assignment, len(s.Assignments)),
		Works:           append([]Work{}, s.Works...),
		Projects:        append([]Project{}, s.Projects...),
		StudyLog:        append([]StudySession{}, s.StudyLog...),
		Timetable:       make(map[Weekday][]Slot, len(s.Timetable)),
		Streak:          s.Streak,
		TotalStudyHours: s.TotalStudyHours,
	}
	for i, a := range s.Assignments {
		if a.Score != nil {
			score := *a.Score
			a.Score = &score
		}
		out.Assignments[i] = a
	}
	for day, slots := range s.Timetable {
		out.Timetable[day] = append([]Slot{}, slots...)
	}
	return out
}

// NextAssignmentID, like the other id helpers, assigns count+1. Ids stay
// unique only because records are never removed.
func (s State) NextAssignmentID() int { return len(s.Assignments) + 1 }
func (s State) NextWorkID() int       { return len(s.Works) + 1 }
func (s State) NextProjectID() int    { return len(s.Projects) + 1 }

// Entries flattens the timetable in weekday order, keeping insertion order
// within a day. Days outside the known set sort last by name.
func (s State) Entries() []TimetableEntry {
	out := []TimetableEntry{}
	for _, day := range s.TimetableDays() {
		for _, slot := range s.Timetable[day] {
			out = append(out, TimetableEntry{Day: day, Slot: slot})
		}
	}
	return out
}

// TimetableDays lists days that have entries, in weekday order.
func (s State) TimetableDays() []Weekday {
	out := []Weekday{}
	known := map[Weekday]bool{}
	for _, day := range Weekdays {
		known[day] = true
		if len(s.Timetable[day]) > 0 {
			out = append(out, day)
		}
	}
	extra := []Weekday{}
	for day, slots := range s.Timetable {
		if !known[day] && len(slots) > 0 {
			extra = append(extra, day)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
