package in

import (
	"context"

	"studytrack/internal/modules/report/dto"
)

type Usecase interface {
	ExportPDF(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	ExportWorkbook(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
