package domain

import "fmt"

const messageFormat = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

// Record is the computed summary of one workout.
type Record struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64
}

// Message renders the summary line; every number carries three decimals.
func (r Record) Message() string {
	return fmt.Sprintf(messageFormat, r.TrainingType, r.Duration, r.Distance, r.Speed, r.Calories)
}
