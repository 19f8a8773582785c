package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	apperrors "fitstat/internal/platform/errors"
)

// Code is the short activity identifier sent by the sensor unit.
type Code string

const (
	CodeRunning  Code = "RUN"
	CodeSwimming Code = "SWM"
	CodeWalking  Code = "WLK"
)

// Package is one sensor reading: an activity code and its positional values.
type Package struct {
	Code Code
	Data []float64
}

type variant struct {
	fields []string
	build  func(values []float64) (Workout, error)
}

var registry = map[Code]variant{
	CodeRunning: {
		fields: []string{"action", "duration", "weight"},
		build: func(v []float64) (Workout, error) {
			action, err := wholeNumber(v[0], "action")
			if err != nil {
				return nil, err
			}
			return NewRunning(action, v[1], v[2])
		},
	},
	CodeSwimming: {
		fields: []string{"action", "duration", "weight", "pool_length", "lap_count"},
		build: func(v []float64) (Workout, error) {
			action, err := wholeNumber(v[0], "action")
			if err != nil {
				return nil, err
			}
			laps, err := wholeNumber(v[4], "lap_count")
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, v[1], v[2], v[3], laps)
		},
	},
	CodeWalking: {
		fields: []string{"action", "duration", "weight", "height"},
		build: func(v []float64) (Workout, error) {
			action, err := wholeNumber(v[0], "action")
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, v[1], v[2], v[3])
		},
	},
}

func init() {
	if err := validateRegistry(registry); err != nil {
		panic(err)
	}
}

func validateRegistry(entries map[Code]variant) error {
	if len(entries) == 0 {
		return fmt.Errorf("workout registry is empty")
	}
	shared := []string{"action", "duration", "weight"}
	for code, v := range entries {
		if len(code) != 3 || strings.ToUpper(string(code)) != string(code) {
			return fmt.Errorf("registry code %q must be three upper-case letters", code)
		}
		if v.build == nil {
			return fmt.Errorf("registry code %q has no constructor", code)
		}
		if len(v.fields) < len(shared) {
			return fmt.Errorf("registry code %q declares %d fields, want at least %d", code, len(v.fields), len(shared))
		}
		for i, name := range shared {
			if v.fields[i] != name {
				return fmt.Errorf("registry code %q field %d is %q, want %q", code, i, v.fields[i], name)
			}
		}
	}
	return nil
}

// Codes lists the supported activity codes in lexical order.
func Codes() []Code {
	out := make([]Code, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fields returns the positional value names expected for code.
func Fields(code Code) ([]string, error) {
	v, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("unknown workout code %q: %w", code, apperrors.ErrInvalidInput)
	}
	return append([]string(nil), v.fields...), nil
}

// Read builds the workout variant registered for code from its positional values.
func Read(code Code, values []float64) (Workout, error) {
	v, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("unknown workout code %q: %w", code, apperrors.ErrInvalidInput)
	}
	if len(values) != len(v.fields) {
		return nil, fmt.Errorf("%s expects %d values (%s), got %d: %w",
			code, len(v.fields), strings.Join(v.fields, ", "), len(values), apperrors.ErrArityMismatch)
	}
	w, err := v.build(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}
	return w, nil
}

// Result is the outcome of reading one package. Exactly one of Workout and Err is set.
type Result struct {
	Index   int
	Package Package
	Workout Workout
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// ReadAll reads every package independently; a failing package does not stop the rest.
func ReadAll(packages []Package) []Result {
	out := make([]Result, 0, len(packages))
	for i, pkg := range packages {
		w, err := Read(pkg.Code, pkg.Data)
		out = append(out, Result{Index: i, Package: pkg, Workout: w, Err: err})
	}
	return out
}

func wholeNumber(value float64, field string) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("%s must be a whole number, got %g: %w", field, value, apperrors.ErrInvalidInput)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %g: %w", field, value, apperrors.ErrInvalidInput)
	}
	return int(value), nil
}
