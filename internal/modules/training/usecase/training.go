package usecase

import (
	"context"
	"fmt"

	journaldto "fitstat/internal/modules/journal/dto"
	journalin "fitstat/internal/modules/journal/port/in"
	"fitstat/internal/modules/training/domain"
	trainingdto "fitstat/internal/modules/training/dto"
	trainingin "fitstat/internal/modules/training/port/in"
	"fitstat/internal/modules/training/service"
	apperrors "fitstat/internal/platform/errors"
)

type Interactor struct {
	svc     *service.TrainingService
	journal journalin.Usecase
}

func NewInteractor(svc *service.TrainingService, journal journalin.Usecase) trainingin.Usecase {
	return &Interactor{svc: svc, journal: journal}
}

// Report summarises every package in order. In strict mode the first bad
// package ends the report; the summaries produced before it are still returned
// alongside the error.
func (i *Interactor) Report(ctx context.Context, input trainingdto.ReportInput) (trainingdto.ReportOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = trainingdto.ModeStrict
	}
	if mode != trainingdto.ModeStrict && mode != trainingdto.ModeSkip {
		return trainingdto.ReportOutput{}, fmt.Errorf("unsupported report mode %q: %w", mode, apperrors.ErrInvalidInput)
	}
	if input.Save && i.journal == nil {
		return trainingdto.ReportOutput{}, fmt.Errorf("journal usecase is not configured")
	}

	packages, err := i.packages(ctx, input)
	if err != nil {
		return trainingdto.ReportOutput{}, err
	}

	out := trainingdto.ReportOutput{}
	for _, result := range i.svc.Evaluate(packages) {
		if !result.OK() {
			if mode == trainingdto.ModeStrict {
				return out, fmt.Errorf("package #%d (%s): %w", result.Index+1, result.Package.Code, result.Err)
			}
			out.Skipped = append(out.Skipped, trainingdto.SkippedOutput{
				Index:  result.Index,
				Code:   string(result.Package.Code),
				Reason: result.Err.Error(),
			})
			continue
		}

		summary := toSummary(result.Index, result.Package.Code, result.Workout.Summary())
		if input.Save {
			entry, err := i.journal.Record(ctx, journaldto.RecordInput{
				Code:         summary.Code,
				TrainingType: summary.TrainingType,
				DurationH:    summary.DurationH,
				DistanceKm:   summary.DistanceKm,
				SpeedKmh:     summary.SpeedKmh,
				Calories:     summary.Calories,
				Message:      summary.Message,
			})
			if err != nil {
				return out, fmt.Errorf("journal package #%d: %w", result.Index+1, err)
			}
			summary.JournalID = entry.ID
			summary.NotePath = entry.NotePath
		}
		out.Summaries = append(out.Summaries, summary)
	}
	return out, nil
}

func (i *Interactor) Calc(_ context.Context, input trainingdto.CalcInput) (trainingdto.SummaryOutput, error) {
	code := domain.Code(input.Code)
	record, err := i.svc.Summarize(code, input.Data)
	if err != nil {
		return trainingdto.SummaryOutput{}, err
	}
	return toSummary(0, code, record), nil
}

func (i *Interactor) Formats(_ context.Context) ([]trainingdto.FormatOutput, error) {
	codes, fields, err := i.svc.Formats()
	if err != nil {
		return nil, err
	}
	out := make([]trainingdto.FormatOutput, 0, len(codes))
	for _, code := range codes {
		out = append(out, trainingdto.FormatOutput{Code: string(code), Fields: fields[code]})
	}
	return out, nil
}

func (i *Interactor) packages(ctx context.Context, input trainingdto.ReportInput) ([]domain.Package, error) {
	if input.Path != "" {
		return i.svc.Load(ctx, input.Path)
	}
	if len(input.Packages) == 0 {
		return SamplePackages(), nil
	}
	out := make([]domain.Package, 0, len(input.Packages))
	for _, p := range input.Packages {
		out = append(out, domain.Package{Code: domain.Code(p.Code), Data: append([]float64(nil), p.Data...)})
	}
	return out, nil
}

func toSummary(index int, code domain.Code, record domain.Record) trainingdto.SummaryOutput {
	return trainingdto.SummaryOutput{
		Index:        index,
		Code:         string(code),
		TrainingType: record.TrainingType,
		DurationH:    record.Duration,
		DistanceKm:   record.Distance,
		SpeedKmh:     record.Speed,
		Calories:     record.Calories,
		Message:      record.Message(),
	}
}
