package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"studytrack/internal/bootstrap"
	"studytrack/internal/modules/record/dto"
	apperrors "studytrack/internal/platform/errors"
)

func newAssignmentCmd(flags *globalFlags) *cobra.Command {
	assignment := &cobra.Command{Use: "assignment", Short: "Assignment commands"}

	var subject, difficulty string
	var deadlineDays int
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a pending assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.AddAssignment(ctx, args[0], subject, deadlineDays, difficulty)
				if err != nil {
					return err
				}
				a := out.Assignment
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "assignment %d added: %q subject=%s deadline=%s difficulty=%s\n", a.ID, a.Title, a.Subject, a.Deadline, a.Difficulty)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&subject, "subject", "", "subject")
	addCmd.Flags().IntVar(&deadlineDays, "days", 7, "days until the deadline")
	addCmd.Flags().StringVar(&difficulty, "difficulty", "Medium", "difficulty: Easy|Medium|Hard")

	var score int
	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark an assignment completed with a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: assignment id %q", apperrors.ErrInvalidInput, args[0])
			}
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.CompleteAssignment(ctx, id, score)
				if err != nil {
					return err
				}
				if !out.OK {
					return fmt.Errorf("assignment %d: %w", id, apperrors.ErrNotFound)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "assignment %d completed with score %d\n", id, score)
				return nil
			})
		},
	}
	completeCmd.Flags().IntVar(&score, "score", 0, "score (0-100)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.RecordCLI.ListAssignments(ctx)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no assignments")
					return nil
				}
				for _, a := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Status, a.Deadline, a.Difficulty, a.Subject, a.Title, scoreText(a.Score))
				}
				return nil
			})
		},
	}

	assignment.AddCommand(addCmd, completeCmd, listCmd)
	return assignment
}

func scoreText(score *int) string {
	if score == nil {
		return "-"
	}
	return strconv.Itoa(*score)
}

func newWorkCmd(flags *globalFlags) *cobra.Command {
	work := &cobra.Command{Use: "work", Short: "Classwork and homework commands"}

	var subject string
	var hours float64
	var completed bool
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.AddWork(ctx, args[0], subject, hours, completed)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "work %d added: %q hours=%g completed=%t\n", out.Work.ID, out.Work.Title, out.Work.DurationHours, out.Work.Completed)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&subject, "subject", "", "subject")
	addCmd.Flags().Float64Var(&hours, "hours", 1, "duration in hours")
	addCmd.Flags().BoolVar(&completed, "completed", false, "already completed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.RecordCLI.ListWorks(ctx)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no works")
					return nil
				}
				for _, w := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%gh\tcompleted=%t\n", w.ID, w.Date, w.Subject, w.Title, w.DurationHours, w.Completed)
				}
				return nil
			})
		},
	}

	work.AddCommand(addCmd, listCmd)
	return work
}

func newProjectCmd(flags *globalFlags) *cobra.Command {
	project := &cobra.Command{Use: "project", Short: "Project commands"}

	var description, status string
	var deadlineDays int
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.AddProject(ctx, args[0], description, deadlineDays, status)
				if err != nil {
					return err
				}
				p := out.Project
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "project %d added: %q status=%s deadline=%s\n", p.ID, p.Title, p.Status, p.Deadline)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "description")
	addCmd.Flags().IntVar(&deadlineDays, "days", 30, "days until the deadline")
	addCmd.Flags().StringVar(&status, "status", "In Progress", `status: "In Progress"|Planning|Review`)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.RecordCLI.ListProjects(ctx)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no projects")
					return nil
				}
				for _, p := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d%%\t%s\n", p.ID, p.Status, p.Deadline, p.Progress, p.Title)
				}
				return nil
			})
		},
	}

	project.AddCommand(addCmd, listCmd)
	return project
}

func newSessionCmd(flags *globalFlags) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Study session commands"}

	var hours float64
	var topics string
	logCmd := &cobra.Command{
		Use:   "log <subject>",
		Short: "Log a study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.LogSession(ctx, args[0], hours, topics)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %gh of %s total=%gh streak=%d\n", out.Session.DurationHours, out.Session.Subject, out.TotalStudyHours, out.Streak)
				if out.JournalPath != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note=%s\n", out.JournalPath)
				}
				return nil
			})
		},
	}
	logCmd.Flags().Float64Var(&hours, "hours", 1, "duration in hours")
	logCmd.Flags().StringVar(&topics, "topics", "", "topics covered")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the study log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.RecordCLI.ListSessions(ctx)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%gh\t%s\n", s.Timestamp, s.Subject, s.DurationHours, s.Topics)
				}
				return nil
			})
		},
	}

	session.AddCommand(logCmd, listCmd)
	return session
}

func newTimetableCmd(flags *globalFlags) *cobra.Command {
	timetable := &cobra.Command{Use: "timetable", Short: "Weekly timetable commands"}

	var at, subject string
	var hours float64
	addCmd := &cobra.Command{
		Use:   "add <day>",
		Short: "Add a timetable slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.AddTimetableEntry(ctx, args[0], at, subject, hours)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timetable: %s %s %s (%gh)\n", out.Entry.Day, out.Entry.Time, out.Entry.Subject, out.Entry.DurationHours)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&at, "time", "09:00", "start time HH:MM")
	addCmd.Flags().StringVar(&subject, "subject", "", "subject")
	addCmd.Flags().Float64Var(&hours, "hours", 1, "duration in hours")

	showCmd := &cobra.Command{
		Use:   "show [day]",
		Short: "Show the timetable, optionally for one day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := ""
			if len(args) == 1 {
				day = args[0]
			}
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				entries, err := app.RecordCLI.Timetable(ctx, day)
				if err != nil {
					return err
				}
				printTimetable(cmd, entries)
				return nil
			})
		},
	}

	timetable.AddCommand(addCmd, showCmd)
	return timetable
}

func printTimetable(cmd *cobra.Command, entries []dto.TimetableEntryOutput) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no timetable entries")
		return
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%gh\n", e.Day, e.Time, e.Subject, e.DurationHours)
	}
}
