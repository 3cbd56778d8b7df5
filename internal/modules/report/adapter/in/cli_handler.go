package in

import (
	"context"

	"studytrack/internal/modules/report/dto"
	reportin "studytrack/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) PDF(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.ExportPDF(ctx, dto.ExportInput{Path: path})
}

func (h CLIHandler) Workbook(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.ExportWorkbook(ctx, dto.ExportInput{Path: path})
}
