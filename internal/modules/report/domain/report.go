package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatWorkbook Format = "xlsx"
)

// FileName is the default report name for the day of at.
func FileName(format Format, at time.Time) string {
	return fmt.Sprintf("studytrack-%s.%s", at.Format("2006-01-02"), format)
}

type Assignment struct {
	ID             int
	Title          string
	Subject        string
	Deadline       string
	Difficulty     string
	Status         string
	Score          *int
	CompletionDate string
}

type Work struct {
	ID            int
	Title         string
	Subject       string
	DurationHours float64
	Completed     bool
	Date          string
}

type Project struct {
	ID          int
	Title       string
	Description string
	Deadline    string
	Status      string
	Progress    int
}

type Session struct {
	Date          string
	Timestamp     string
	Subject       string
	DurationHours float64
	Topics        string
}

type Slot struct {
	Day           string
	Time          string
	Subject       string
	DurationHours float64
}

type Totals struct {
	TotalStudyHours      float64
	Streak               int
	ConsecutiveDays      int
	TotalAssignments     int
	CompletedAssignments int
	PendingAssignments   int
	TotalProjects        int
	TotalWorks           int
	CompletedWorks       int
	AvgScore             float64
	SubjectHours         map[string]float64
	DailyStudy           map[string]float64
}

// Snapshot is everything a report renders, read once at export time.
type Snapshot struct {
	GeneratedAt       time.Time
	Student           string
	Encouragement     string
	Totals            Totals
	Suggestions       []string
	RecentAssignments []Assignment
	Assignments       []Assignment
	Works             []Work
	Projects          []Project
	Sessions          []Session
	Timetable         []Slot
}

// Greeting is the encouragement line; reports carry it only once an
// assignment has been completed.
func (s Snapshot) Greeting() string {
	if s.Totals.CompletedAssignments == 0 {
		return ""
	}
	return s.Encouragement
}

type Line struct {
	Label string
	Value string
}

// SummaryLines is the headline block shared by the PDF and the workbook.
func SummaryLines(s Snapshot) []Line {
	return []Line{
		{"Student", s.Student},
		{"Generated", s.GeneratedAt.Format("2006-01-02 15:04")},
		{"Total study hours", formatHours(s.Totals.TotalStudyHours)},
		{"Streak", strconv.Itoa(s.Totals.Streak)},
		{"Consecutive days", strconv.Itoa(s.Totals.ConsecutiveDays)},
		{"Assignments", fmt.Sprintf("%d (%d completed, %d pending)", s.Totals.TotalAssignments, s.Totals.CompletedAssignments, s.Totals.PendingAssignments)},
		{"Works", fmt.Sprintf("%d (%d completed)", s.Totals.TotalWorks, s.Totals.CompletedWorks)},
		{"Projects", strconv.Itoa(s.Totals.TotalProjects)},
		{"Average score", fmt.Sprintf("%.1f", s.Totals.AvgScore)},
	}
}

// SubjectLines lists per-subject hours, most studied first, ties by name.
func SubjectLines(hours map[string]float64) []Line {
	subjects := make([]string, 0, len(hours))
	for subject := range hours {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if hours[subjects[i]] != hours[subjects[j]] {
			return hours[subjects[i]] > hours[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})
	out := make([]Line, 0, len(subjects))
	for _, subject := range subjects {
		out = append(out, Line{Label: subject, Value: formatHours(hours[subject])})
	}
	return out
}

type DayHours struct {
	Date  string
	Hours float64
}

// DailySeries lists studied days oldest first, with the busiest day's hours.
func DailySeries(daily map[string]float64) ([]DayHours, float64) {
	out := make([]DayHours, 0, len(daily))
	peak := 0.0
	for date, hours := range daily {
		out = append(out, DayHours{Date: date, Hours: hours})
		peak = max(peak, hours)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, peak
}

// HoursText formats an hour count the way the summary does.
func HoursText(h float64) string { return formatHours(h) }

func ScoreText(score *int) string {
	if score == nil {
		return "-"
	}
	return strconv.Itoa(*score)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + " h"
}
