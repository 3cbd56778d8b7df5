package domain_test

import (
	"testing"
	"time"

	"studytrack/internal/modules/report/domain"
)

func TestFileName(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	if got := domain.FileName(domain.FormatPDF, at); got != "studytrack-2026-03-10.pdf" {
		t.Fatalf("pdf name = %q", got)
	}
	if got := domain.FileName(domain.FormatWorkbook, at); got != "studytrack-2026-03-10.xlsx" {
		t.Fatalf("xlsx name = %q", got)
	}
}

func TestSubjectLinesOrder(t *testing.T) {
	t.Parallel()
	lines := domain.SubjectLines(map[string]float64{"Math": 2, "Art": 2, "Physics": 5.5})
	if len(lines) != 3 || lines[0].Label != "Physics" || lines[1].Label != "Art" || lines[2].Label != "Math" {
		t.Fatalf("unexpected order: %+v", lines)
	}
	if lines[0].Value != "5.5 h" {
		t.Fatalf("value = %q", lines[0].Value)
	}
}

func TestSummaryLines(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{
		Student:     "Ada",
		GeneratedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local),
		Totals:      domain.Totals{TotalStudyHours: 12.5, TotalAssignments: 3, CompletedAssignments: 1, PendingAssignments: 2, AvgScore: 75},
	}
	lines := domain.SummaryLines(s)
	got := map[string]string{}
	for _, l := range lines {
		got[l.Label] = l.Value
	}
	if got["Student"] != "Ada" || got["Total study hours"] != "12.5 h" || got["Assignments"] != "3 (1 completed, 2 pending)" || got["Average score"] != "75.0" {
		t.Fatalf("unexpected summary: %v", got)
	}
}

func TestScoreText(t *testing.T) {
	t.Parallel()
	score := 0
	if domain.ScoreText(nil) != "-" || domain.ScoreText(&score) != "0" {
		t.Fatalf("unexpected score text")
	}
}

func TestDailySeriesOldestFirst(t *testing.T) {
	t.Parallel()
	days, peak := domain.DailySeries(map[string]float64{"2026-03-10": 1.5, "2026-02-28": 4, "2026-03-01": 0.5})
	if len(days) != 3 || days[0].Date != "2026-02-28" || days[1].Date != "2026-03-01" || days[2].Date != "2026-03-10" {
		t.Fatalf("unexpected order: %+v", days)
	}
	if peak != 4 || days[2].Hours != 1.5 {
		t.Fatalf("peak = %v, last = %+v", peak, days[2])
	}
	if empty, peak := domain.DailySeries(nil); len(empty) != 0 || peak != 0 {
		t.Fatalf("expected empty series, got %v %v", empty, peak)
	}
}

func TestGreetingNeedsACompletedAssignment(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{Encouragement: "Proud of your effort, Ada! You got this!", Totals: domain.Totals{TotalAssignments: 2}}
	if s.Greeting() != "" {
		t.Fatalf("greeting before completion = %q", s.Greeting())
	}
	s.Totals.CompletedAssignments = 1
	if s.Greeting() != s.Encouragement {
		t.Fatalf("greeting = %q", s.Greeting())
	}
}
