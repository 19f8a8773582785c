package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "fitstat/internal/platform/errors"
)

const SchemaVersion = 1

// Entry is one journaled workout summary.
type Entry struct {
	ID           string
	Code         string
	TrainingType string
	DurationH    float64
	DistanceKm   float64
	SpeedKmh     float64
	Calories     float64
	Message      string
	RecordedAt   time.Time
	NotePath     string
	// NoteBody is read back from NotePath and is not indexed.
	NoteBody     string
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("entry id is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(e.TrainingType) == "" {
		return fmt.Errorf("training type is required: %w", apperrors.ErrInvalidInput)
	}
	if e.DurationH <= 0 {
		return fmt.Errorf("duration must be positive, got %g: %w", e.DurationH, apperrors.ErrInvalidInput)
	}
	if e.RecordedAt.IsZero() {
		return fmt.Errorf("recorded_at is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}
