package in

import (
	"context"
	"fmt"
	"strconv"

	trainingdto "fitstat/internal/modules/training/dto"
	trainingin "fitstat/internal/modules/training/port/in"
	apperrors "fitstat/internal/platform/errors"
)

type CLIHandler struct {
	usecase trainingin.Usecase
}

func NewCLIHandler(usecase trainingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, path string, skipInvalid, save bool) (trainingdto.ReportOutput, error) {
	mode := trainingdto.ModeStrict
	if skipInvalid {
		mode = trainingdto.ModeSkip
	}
	return h.usecase.Report(ctx, trainingdto.ReportInput{Path: path, Mode: mode, Save: save})
}

func (h CLIHandler) Calc(ctx context.Context, code string, args []string) (trainingdto.SummaryOutput, error) {
	values, err := ParseValues(args)
	if err != nil {
		return trainingdto.SummaryOutput{}, err
	}
	return h.usecase.Calc(ctx, trainingdto.CalcInput{Code: code, Data: values})
}

func (h CLIHandler) Formats(ctx context.Context) ([]trainingdto.FormatOutput, error) {
	return h.usecase.Formats(ctx)
}

// ParseValues converts positional command-line numbers.
func ParseValues(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("value #%d %q is not a number: %w", i+1, arg, apperrors.ErrInvalidInput)
		}
		out = append(out, v)
	}
	return out, nil
}
