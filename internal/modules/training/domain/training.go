// Package domain holds the workout calculation model: the shared Training
// inputs, the three activity variants and the code dispatcher.
package domain

import (
	"fmt"
	"math"

	apperrors "fitstat/internal/platform/errors"
)

const (
	MetersPerKm    = 1000.0
	MinutesPerHour = 60.0
)

// Workout is the capability every activity variant provides.
type Workout interface {
	Kind() string
	Hours() float64
	DistanceKm() float64
	MeanSpeedKmh() float64
	SpentCalories() float64
	Summary() Record
}

// Training holds the raw sensor inputs shared by every variant. It does not
// implement Workout on its own: calories are variant specific.
type Training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func newTraining(action int, duration, weight float64) (Training, error) {
	if action < 0 {
		return Training{}, fmt.Errorf("action count must be non-negative, got %d: %w", action, apperrors.ErrInvalidInput)
	}
	if duration <= 0 || !finite(duration) {
		return Training{}, fmt.Errorf("duration must be positive, got %g: %w", duration, apperrors.ErrInvalidInput)
	}
	if weight < 0 || !finite(weight) {
		return Training{}, fmt.Errorf("weight must be non-negative, got %g: %w", weight, apperrors.ErrInvalidInput)
	}
	return Training{Action: action, Duration: duration, Weight: weight}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (t Training) Hours() float64 {
	return t.Duration
}

func (t Training) distanceKm(stepLength float64) float64 {
	return float64(t.Action) * stepLength / MetersPerKm
}

func summarize(w Workout) Record {
	return Record{
		TrainingType: w.Kind(),
		Duration:     w.Hours(),
		Distance:     w.DistanceKm(),
		Speed:        w.MeanSpeedKmh(),
		Calories:     w.SpentCalories(),
	}
}
