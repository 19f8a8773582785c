package usecase

import "fitstat/internal/modules/training/domain"

// SamplePackages is the built-in batch reported when no packages are supplied.
func SamplePackages() []domain.Package {
	return []domain.Package{
		{Code: domain.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: domain.CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: domain.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
