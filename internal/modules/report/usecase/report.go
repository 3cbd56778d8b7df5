package usecase

import (
	"context"

	"studytrack/internal/modules/report/domain"
	"studytrack/internal/modules/report/dto"
	reportin "studytrack/internal/modules/report/port/in"
	"studytrack/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ExportPDF(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	return i.export(ctx, domain.FormatPDF, input)
}

func (i *Interactor) ExportWorkbook(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	return i.export(ctx, domain.FormatWorkbook, input)
}

func (i *Interactor) export(ctx context.Context, format domain.Format, input dto.ExportInput) (dto.ExportOutput, error) {
	path, snapshot, err := i.svc.Export(ctx, format, input.Path)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{
		Path:        path,
		Format:      string(format),
		Assignments: len(snapshot.Assignments),
		Sessions:    len(snapshot.Sessions),
	}, nil
}
