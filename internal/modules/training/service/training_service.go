package service

import (
	"context"
	"fmt"
	"strings"

	"fitstat/internal/modules/training/domain"
	trainingout "fitstat/internal/modules/training/port/out"
)

type TrainingService struct {
	source trainingout.PackageSource
}

func NewTrainingService(source trainingout.PackageSource) *TrainingService {
	return &TrainingService{source: source}
}

// Load reads packages from a file through the configured source.
func (s *TrainingService) Load(ctx context.Context, path string) ([]domain.Package, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("packages path is required")
	}
	if s.source == nil {
		return nil, fmt.Errorf("package source is not configured")
	}
	return s.source.Load(ctx, path)
}

func (s *TrainingService) Evaluate(packages []domain.Package) []domain.Result {
	return domain.ReadAll(packages)
}

// Formats lists every registered code with its positional field names.
func (s *TrainingService) Formats() ([]domain.Code, map[domain.Code][]string, error) {
	codes := domain.Codes()
	fields := make(map[domain.Code][]string, len(codes))
	for _, code := range codes {
		f, err := domain.Fields(code)
		if err != nil {
			return nil, nil, err
		}
		fields[code] = f
	}
	return codes, fields, nil
}

func (s *TrainingService) Summarize(code domain.Code, values []float64) (domain.Record, error) {
	w, err := domain.Read(code, values)
	if err != nil {
		return domain.Record{}, err
	}
	return w.Summary(), nil
}
