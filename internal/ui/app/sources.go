package app

import (
	"context"
	"fmt"
	"strconv"

	"studytrack/internal/ui/theme"
	recordsview "studytrack/internal/ui/views/records"
)

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge flattens one record listing into list items for the records
// view, which knows nothing about record DTOs.

type assignmentSource struct{ p recordPort }

func (s assignmentSource) Load(ctx context.Context) ([]recordsview.Item, error) {
	items, err := s.p.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recordsview.Item, 0, len(items))
	for _, a := range items {
		score := ""
		if a.Score != nil {
			score = strconv.Itoa(*a.Score)
		}
		out = append(out, recordsview.Item{
			Key:     strconv.Itoa(a.ID),
			Heading: fmt.Sprintf("#%d %s", a.ID, a.Title),
			Summary: fmt.Sprintf("%s · %s · due %s", a.Subject, a.Status, a.Deadline),
			Fields: []recordsview.Field{
				{Label: "subject", Value: a.Subject},
				{Label: "status", Value: theme.Status(a.Status)},
				{Label: "difficulty", Value: a.Difficulty},
				{Label: "deadline", Value: a.Deadline},
				{Label: "created", Value: a.CreatedDate},
				{Label: "score", Value: score},
				{Label: "completed", Value: a.CompletionDate},
			},
		})
	}
	return out, nil
}

type workSource struct{ p recordPort }

func (s workSource) Load(ctx context.Context) ([]recordsview.Item, error) {
	items, err := s.p.ListWorks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recordsview.Item, 0, len(items))
	for _, w := range items {
		state := "to do"
		if w.Completed {
			state = "done"
		}
		out = append(out, recordsview.Item{
			Key:     strconv.Itoa(w.ID),
			Heading: fmt.Sprintf("#%d %s", w.ID, w.Title),
			Summary: fmt.Sprintf("%s · %gh · %s", w.Subject, w.DurationHours, state),
			Fields: []recordsview.Field{
				{Label: "subject", Value: w.Subject},
				{Label: "hours", Value: strconv.FormatFloat(w.DurationHours, 'f', -1, 64)},
				{Label: "state", Value: state},
				{Label: "recorded", Value: w.Timestamp},
			},
		})
	}
	return out, nil
}

type projectSource struct{ p recordPort }

func (s projectSource) Load(ctx context.Context) ([]recordsview.Item, error) {
	items, err := s.p.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recordsview.Item, 0, len(items))
	for _, p := range items {
		out = append(out, recordsview.Item{
			Key:     strconv.Itoa(p.ID),
			Heading: fmt.Sprintf("#%d %s", p.ID, p.Title),
			Summary: fmt.Sprintf("%s · due %s · %d%%", p.Status, p.Deadline, p.Progress),
			Fields: []recordsview.Field{
				{Label: "status", Value: theme.Status(p.Status)},
				{Label: "deadline", Value: p.Deadline},
				{Label: "progress", Value: fmt.Sprintf("%d%%", p.Progress)},
				{Label: "created", Value: p.CreatedDate},
				{Label: "about", Value: p.Description},
			},
		})
	}
	return out, nil
}

// sessionSource lists the study log newest first.
type sessionSource struct{ p recordPort }

func (s sessionSource) Load(ctx context.Context) ([]recordsview.Item, error) {
	items, err := s.p.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recordsview.Item, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		session := items[i]
		out = append(out, recordsview.Item{
			Key:     strconv.Itoa(i),
			Heading: fmt.Sprintf("%s · %gh", session.Subject, session.DurationHours),
			Summary: session.Timestamp,
			Fields: []recordsview.Field{
				{Label: "subject", Value: session.Subject},
				{Label: "hours", Value: strconv.FormatFloat(session.DurationHours, 'f', -1, 64)},
				{Label: "date", Value: session.Date},
				{Label: "logged", Value: session.Timestamp},
				{Label: "topics", Value: session.Topics},
			},
		})
	}
	return out, nil
}
