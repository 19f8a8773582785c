package domain

import (
	"fmt"
	"math"

	apperrors "fitstat/internal/platform/errors"
)

const (
	KindRunning       = "Running"
	KindSportsWalking = "SportsWalking"
	KindSwimming      = "Swimming"
)

// Step lengths in meters per action.
const (
	StepLength   = 0.65
	StrokeLength = 1.38
)

const (
	runSpeedMultiplier = 18.0
	runSpeedShift      = 20.0

	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029

	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2.0
)

type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) (Running, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{Training: t}, nil
}

func (Running) Kind() string { return KindRunning }

func (r Running) DistanceKm() float64 {
	return r.distanceKm(StepLength)
}

func (r Running) MeanSpeedKmh() float64 {
	return r.DistanceKm() / r.Duration
}

func (r Running) SpentCalories() float64 {
	shifted := runSpeedMultiplier*r.MeanSpeedKmh() - runSpeedShift
	return shifted * r.Weight / MetersPerKm * r.Duration * MinutesPerHour
}

func (r Running) Summary() Record { return summarize(r) }

type SportsWalking struct {
	Training
	Height float64 // cm
}

func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if height <= 0 || !finite(height) {
		return SportsWalking{}, fmt.Errorf("height must be positive, got %g: %w", height, apperrors.ErrInvalidInput)
	}
	return SportsWalking{Training: t, Height: height}, nil
}

func (SportsWalking) Kind() string { return KindSportsWalking }

func (w SportsWalking) DistanceKm() float64 {
	return w.distanceKm(StepLength)
}

func (w SportsWalking) MeanSpeedKmh() float64 {
	return w.DistanceKm() / w.Duration
}

// SpentCalories floor-divides the squared speed by height. The truncation is
// part of the published formula and must not be replaced by real division.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeedKmh()
	base := walkWeightMultiplier * w.Weight
	ratio := floorDiv(speed*speed, w.Height)
	return (base + ratio*(walkSpeedMultiplier*w.Weight)) * w.Duration * MinutesPerHour
}

func (w SportsWalking) Summary() Record { return summarize(w) }

type Swimming struct {
	Training
	PoolLength float64 // meters
	LapCount   int
}

func NewSwimming(action int, duration, weight, poolLength float64, lapCount int) (Swimming, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if poolLength < 0 || !finite(poolLength) {
		return Swimming{}, fmt.Errorf("pool length must be non-negative, got %g: %w", poolLength, apperrors.ErrInvalidInput)
	}
	if lapCount < 0 {
		return Swimming{}, fmt.Errorf("lap count must be non-negative, got %d: %w", lapCount, apperrors.ErrInvalidInput)
	}
	return Swimming{Training: t, PoolLength: poolLength, LapCount: lapCount}, nil
}

func (Swimming) Kind() string { return KindSwimming }

func (s Swimming) DistanceKm() float64 {
	return s.distanceKm(StrokeLength)
}

// MeanSpeedKmh is derived from the pool laps, not from the stroke count.
func (s Swimming) MeanSpeedKmh() float64 {
	return s.PoolLength * float64(s.LapCount) / MetersPerKm / s.Duration
}

// SpentCalories is per session; unlike the land variants it is not scaled by duration.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeedKmh() + swimSpeedShift) * swimWeightMultiplier * s.Weight
}

func (s Swimming) Summary() Record { return summarize(s) }

// floorDiv returns a/b rounded toward negative infinity, computed from the
// remainder so that results sitting just below an integer are not pushed up
// by the rounding of a plain a/b.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
