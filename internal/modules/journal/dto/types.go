package dto

import "time"

type RecordInput struct {
	Code         string
	TrainingType string
	DurationH    float64
	DistanceKm   float64
	SpeedKmh     float64
	Calories     float64
	Message      string
}

type EntryOutput struct {
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
	NoteBody     string
}

type ListInput struct {
	Limit int
}
