package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"studytrack/internal/bootstrap"
	"studytrack/internal/platform/config"
	"studytrack/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir    string
	configPath string
	student    string
	logMode    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "studytrack",
		Short:         "Track assignments, study sessions and progress",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default $XDG_DATA_HOME/studytrack)")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default <data-dir>/config.yaml)")
	root.PersistentFlags().StringVar(&flags.student, "student", "", "student name shown in greetings and reports")
	root.PersistentFlags().StringVar(&flags.logMode, "log", "", "log mode: dev|prod|off")

	root.AddCommand(newAssignmentCmd(flags))
	root.AddCommand(newWorkCmd(flags))
	root.AddCommand(newProjectCmd(flags))
	root.AddCommand(newSessionCmd(flags))
	root.AddCommand(newTimetableCmd(flags))
	root.AddCommand(newAnalyticsCmd(flags))
	root.AddCommand(newSuggestCmd(flags))
	root.AddCommand(newDashboardCmd(flags))
	root.AddCommand(newReportCmd(flags))
	root.AddCommand(newReindexCmd(flags))
	root.AddCommand(newDoctorCmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newTUICmd(flags))
	return root
}

func loadApp(ctx context.Context, flags *globalFlags) (*bootstrap.App, error) {
	if err := config.LoadDotenv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.Overrides{
		DataDir:     flags.dataDir,
		ConfigPath:  flags.configPath,
		StudentName: flags.student,
		LogMode:     flags.logMode,
	})
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, log)
}

// withApp loads the app, runs fn and releases the projection handle.
func withApp(flags *globalFlags, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := context.Background()
	app, err := loadApp(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(ctx, app)
}

func newReindexCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite projection from the student document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.RecordCLI.Reindex(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
				return nil
			})
		},
	}
}

func newDoctorCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the hour total and the projection against the session log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.RecordCLI.Doctor(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "sessions: %d\n", out.Sessions)
				_, _ = fmt.Fprintf(w, "recorded hours: %g\n", out.RecordedHours)
				_, _ = fmt.Fprintf(w, "computed hours: %g\n", out.ComputedHours)
				_, _ = fmt.Fprintf(w, "drift: %g\n", out.Drift)
				_, _ = fmt.Fprintf(w, "projection hours: %g in_sync=%t\n", out.ProjectionHours, out.ProjectionInSync)
				if !out.OK {
					return fmt.Errorf("doctor found problems; run reindex if only the projection is out of sync")
				}
				_, _ = fmt.Fprintln(w, "ok")
				return nil
			})
		},
	}
}

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP JSON view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			app, err := loadApp(ctx, flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if addr == "" {
				addr = app.Config.HTTPAddr
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "serving on http://%s\n", addr)
			return bootstrap.Serve(ctx, app, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8787)")
	return cmd
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(flags, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}
