package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"studytrack/internal/bootstrap"
	"studytrack/internal/modules/record/dto"
	reportdto "studytrack/internal/modules/report/dto"
)

func newAnalyticsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show study analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.Analytics(ctx)
				if err != nil {
					return err
				}
				printAnalytics(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func printAnalytics(w io.Writer, a dto.AnalyticsOutput) {
	_, _ = fmt.Fprintf(w, "total hours: %.1f\n", a.TotalStudyHours)
	_, _ = fmt.Fprintf(w, "streak: %d (consecutive days: %d)\n", a.CurrentStreak, a.ConsecutiveDays)
	_, _ = fmt.Fprintf(w, "assignments: %d total, %d completed, %d pending\n", a.TotalAssignments, a.CompletedAssignments, a.PendingAssignments)
	_, _ = fmt.Fprintf(w, "works: %d total, %d completed\n", a.TotalWorks, a.CompletedWorks)
	_, _ = fmt.Fprintf(w, "projects: %d\n", a.TotalProjects)
	_, _ = fmt.Fprintf(w, "average score: %.1f\n", a.AvgScore)
	for _, subject := range sortedKeys(a.SubjectWiseHours) {
		_, _ = fmt.Fprintf(w, "subject %s: %.1fh\n", subject, a.SubjectWiseHours[subject])
	}
	for _, day := range sortedKeys(a.DailyStudy) {
		_, _ = fmt.Fprintf(w, "day %s: %.1fh\n", day, a.DailyStudy[day])
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newSuggestCmd(flags *globalFlags) *cobra.Command {
	var withTips bool
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show study suggestions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.RecordCLI.Suggestions(ctx)
				if err != nil {
					return err
				}
				printSuggestions(cmd.OutOrStdout(), items)
				if !withTips {
					return nil
				}
				tips, err := app.RecordCLI.Tips(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nlearning tips:")
				printTips(cmd.OutOrStdout(), tips)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&withTips, "tips", false, "also list the learning tips")
	return cmd
}

func printTips(w io.Writer, tips []dto.TipOutput) {
	for _, t := range tips {
		_, _ = fmt.Fprintf(w, "- %s: %s\n", t.Title, t.Detail)
	}
}

func printSuggestions(w io.Writer, items []dto.SuggestionOutput) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "no suggestions")
		return
	}
	for _, s := range items {
		_, _ = fmt.Fprintf(w, "- %s\n", s.Text)
	}
}

func newDashboardCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the combined dashboard view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.Dashboard(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if asJSON {
					raw, err := json.MarshalIndent(out, "", "  ")
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintln(w, string(raw))
					return nil
				}
				if out.Analytics.CompletedAssignments > 0 {
					_, _ = fmt.Fprintf(w, "%s\n\n", out.Encouragement)
				}
				printAnalytics(w, out.Analytics)
				_, _ = fmt.Fprintln(w)
				printSuggestions(w, out.Suggestions)
				if len(out.RecentAssignments) > 0 {
					_, _ = fmt.Fprintln(w, "\nrecent assignments:")
					for _, a := range out.RecentAssignments {
						_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Status, a.Deadline, a.Title)
					}
				}
				if len(out.Timetable) > 0 {
					_, _ = fmt.Fprintln(w, "\ntimetable:")
					printTimetable(cmd, out.Timetable)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the dashboard as JSON")
	return cmd
}

func newReportCmd(flags *globalFlags) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Export progress reports"}

	var pdfOut string
	pdfCmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export a PDF progress report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ReportCLI.PDF(ctx, pdfOut)
				if err != nil {
					return err
				}
				printExport(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	pdfCmd.Flags().StringVar(&pdfOut, "out", "", "output path (default <data-dir>/reports/studytrack-<date>.pdf)")

	var xlsxOut string
	xlsxCmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Export an Excel workbook of all records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ReportCLI.Workbook(ctx, xlsxOut)
				if err != nil {
					return err
				}
				printExport(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	xlsxCmd.Flags().StringVar(&xlsxOut, "out", "", "output path (default <data-dir>/reports/studytrack-<date>.xlsx)")

	report.AddCommand(pdfCmd, xlsxCmd)
	return report
}

func printExport(w io.Writer, out reportdto.ExportOutput) {
	_, _ = fmt.Fprintf(w, "report written: %s format=%s assignments=%d sessions=%d\n", out.Path, out.Format, out.Assignments, out.Sessions)
}
