package in

import (
	"context"

	"fitstat/internal/modules/training/dto"
)

type Usecase interface {
	Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error)
	Calc(ctx context.Context, input dto.CalcInput) (dto.SummaryOutput, error)
	Formats(ctx context.Context) ([]dto.FormatOutput, error)
}
