package domain

import (
	"fmt"
	"sort"
)

type SuggestionKind string

const (
	SuggestStudyMore      SuggestionKind = "study_more"
	SuggestPending        SuggestionKind = "pending_assignments"
	SuggestLowScores      SuggestionKind = "low_scores"
	SuggestHighScores     SuggestionKind = "high_scores"
	SuggestStreak         SuggestionKind = "streak_milestone"
	SuggestStart          SuggestionKind = "start_streak"
	SuggestNeglectSubject SuggestionKind = "neglected_subject"
)

const (
	MinTotalHours   = 10.0
	LowScoreBound   = 70.0
	HighScoreBound  = 85.0
	StreakMilestone = 7
)

type Suggestion struct {
	Kind    SuggestionKind
	Text    string
	Count   int
	Subject string
}

// Suggest evaluates the advisory rules in their fixed order. Rules are
// independent; any subset may fire.
func Suggest(s State) []Suggestion {
	out := []Suggestion{}

	if s.TotalStudyHours < MinTotalHours {
		out = append(out, Suggestion{Kind: SuggestStudyMore, Text: "Increase daily study sessions to at least 2 hours"})
	}

	pending, completed := 0, []Assignment{}
	for _, a := range s.Assignments {
		switch a.Status {
		case StatusPending:
			pending++
		case StatusCompleted:
			completed = append(completed, a)
		}
	}
	if pending > 0 {
		out = append(out, Suggestion{
			Kind:  SuggestPending,
			Text:  fmt.Sprintf("You have %d pending assignments. Prioritize them!", pending),
			Count: pending,
		})
	}

	if len(completed) > 0 {
		total := 0
		for _, a := range completed {
			total += a.ScoreValue()
		}
		mean := float64(total) / float64(len(completed))
		switch {
		case mean < LowScoreBound:
			out = append(out, Suggestion{Kind: SuggestLowScores, Text: "Your average score is below 70%. Focus on difficult topics"})
		case mean > HighScoreBound:
			out = append(out, Suggestion{Kind: SuggestHighScores, Text: "Excellent performance! Keep it up!"})
		}
	}

	switch {
	case s.Streak >= StreakMilestone:
		out = append(out, Suggestion{
			Kind:  SuggestStreak,
			Text:  fmt.Sprintf("Amazing streak of %d days! You're on fire!", s.Streak),
			Count: s.Streak,
		})
	case s.Streak == 0:
		out = append(out, Suggestion{Kind: SuggestStart, Text: "Start your learning journey today!"})
	}

	if subject, ok := LeastStudiedSubject(LastSessions(s.StudyLog, SuggestionWindow)); ok {
		out = append(out, Suggestion{
			Kind:    SuggestNeglectSubject,
			Text:    fmt.Sprintf("Spend more time on %s", subject),
			Subject: subject,
		})
	}
	return out
}

// LeastStudiedSubject picks the subject with the smallest summed hours.
// Ties go to the alphabetically first subject.
func LeastStudiedSubject(log []StudySession) (string, bool) {
	hours := SubjectHours(log)
	if len(hours) == 0 {
		return "", false
	}
	subjects := make([]string, 0, len(hours))
	for subject := range hours {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	least := subjects[0]
	for _, subject := range subjects[1:] {
		if hours[subject] < hours[least] {
			least = subject
		}
	}
	return least, true
}
