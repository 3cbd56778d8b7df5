package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	recordinadapter "studytrack/internal/modules/record/adapter/in"
	recordoutadapter "studytrack/internal/modules/record/adapter/out"
	recordservice "studytrack/internal/modules/record/service"
	recordusecase "studytrack/internal/modules/record/usecase"
	"studytrack/internal/modules/report/domain"
	reportinadapter "studytrack/internal/modules/report/adapter/in"
	reportoutadapter "studytrack/internal/modules/report/adapter/out"
	reportout "studytrack/internal/modules/report/port/out"
	reportservice "studytrack/internal/modules/report/service"
	reportusecase "studytrack/internal/modules/report/usecase"
	"studytrack/internal/platform/clock"
	"studytrack/internal/platform/config"
	"studytrack/internal/platform/logger"
	uiapp "studytrack/internal/ui/app"
)

type App struct {
	Config     config.Config
	Log        *logger.Logger
	RecordCLI  recordinadapter.CLIHandler
	RecordHTTP *recordinadapter.HTTPHandler
	ReportCLI  reportinadapter.CLIHandler

	projector *recordoutadapter.SQLiteProjector
}

func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	clk := clock.SystemClock{}

	projector, err := recordoutadapter.NewSQLiteProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new record projector: %w", err)
	}
	opts := []recordservice.Option{
		recordservice.WithProjector(projector),
		recordservice.WithLogger(log.With("module", "record")),
		recordservice.WithStudentName(cfg.StudentName),
	}
	if cfg.Journal {
		opts = append(opts, recordservice.WithJournal(recordoutadapter.NewMarkdownJournal(cfg.JournalDir)))
	}
	recordSvc, err := recordservice.NewRecordService(ctx, clk, recordoutadapter.NewFileStateStore(cfg.DocPath), opts...)
	if err != nil {
		_ = projector.Close()
		return nil, err
	}
	recordUC := recordusecase.NewInteractor(recordSvc)

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		reportoutadapter.NewRecordSourceAdapter(recordUC),
		cfg.ReportsDir,
		map[domain.Format]reportout.Renderer{
			domain.FormatPDF:      reportoutadapter.NewPDFRenderer(),
			domain.FormatWorkbook: reportoutadapter.NewWorkbookWriter(),
		},
		log.With("module", "report"),
	))

	return &App{
		Config:     cfg,
		Log:        log,
		RecordCLI:  recordinadapter.NewCLIHandler(recordUC),
		RecordHTTP: recordinadapter.NewHTTPHandler(recordUC, log),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		projector:  projector,
	}, nil
}

func (a *App) Close() error {
	a.Log.Sync()
	if a.projector == nil {
		return nil
	}
	return a.projector.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Config.StudentName, app.RecordCLI, app.ReportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
