package domain_test

import (
	"errors"
	"testing"

	"fitstat/internal/modules/training/domain"
	apperrors "fitstat/internal/platform/errors"
)

func TestReadBuildsRegisteredVariants(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code domain.Code
		data []float64
		kind string
	}{
		{domain.CodeSwimming, []float64{720, 1, 80, 25, 40}, domain.KindSwimming},
		{domain.CodeRunning, []float64{15000, 1, 75}, domain.KindRunning},
		{domain.CodeWalking, []float64{9000, 1, 75, 180}, domain.KindSportsWalking},
	}
	for _, tc := range cases {
		w, err := domain.Read(tc.code, tc.data)
		if err != nil {
			t.Fatalf("read %s: %v", tc.code, err)
		}
		if w.Kind() != tc.kind {
			t.Fatalf("read %s: expected %s, got %s", tc.code, tc.kind, w.Kind())
		}
	}
}

func TestReadUnknownCode(t *testing.T) {
	t.Parallel()
	w, err := domain.Read("XYZ", []float64{1, 1, 1})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if w != nil {
		t.Fatalf("expected no workout for unknown code, got %+v", w)
	}
	if _, err := domain.Read("run", []float64{1, 1, 1}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("codes are case sensitive, got %v", err)
	}
}

func TestReadArityMismatch(t *testing.T) {
	t.Parallel()
	if _, err := domain.Read(domain.CodeRunning, []float64{15000, 1}); !errors.Is(err, apperrors.ErrArityMismatch) {
		t.Fatalf("expected arity mismatch for short data, got %v", err)
	}
	if _, err := domain.Read(domain.CodeWalking, []float64{9000, 1, 75, 180, 1}); !errors.Is(err, apperrors.ErrArityMismatch) {
		t.Fatalf("expected arity mismatch for long data, got %v", err)
	}
}

func TestReadRejectsFractionalCountsAndZeroDuration(t *testing.T) {
	t.Parallel()
	w, err := domain.Read(domain.CodeRunning, []float64{150.5, 1, 75})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("fractional action count must fail, got %v", err)
	}
	if w != nil {
		t.Fatalf("failed read must not return a workout")
	}
	if _, err := domain.Read(domain.CodeSwimming, []float64{720, 1, 80, 25, 40.5}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("fractional lap count must fail, got %v", err)
	}
	if _, err := domain.Read(domain.CodeRunning, []float64{15000, 0, 75}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero duration must fail, got %v", err)
	}
}

func TestReadAllKeepsGoingAfterFailures(t *testing.T) {
	t.Parallel()
	results := domain.ReadAll([]domain.Package{
		{Code: domain.CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: "XYZ", Data: []float64{1, 2, 3}},
		{Code: domain.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].OK() || !results[2].OK() {
		t.Fatalf("valid packages must succeed: %+v", results)
	}
	if results[1].OK() || results[1].Workout != nil || results[1].Index != 1 {
		t.Fatalf("unknown code must yield an empty failed result, got %+v", results[1])
	}
}

func TestCodesAndFields(t *testing.T) {
	t.Parallel()
	codes := domain.Codes()
	if len(codes) != 3 || codes[0] != domain.CodeRunning || codes[1] != domain.CodeSwimming || codes[2] != domain.CodeWalking {
		t.Fatalf("unexpected codes %v", codes)
	}
	fields, err := domain.Fields(domain.CodeSwimming)
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if len(fields) != 5 || fields[3] != "pool_length" {
		t.Fatalf("unexpected swimming fields %v", fields)
	}
	if _, err := domain.Fields("XYZ"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown fields lookup, got %v", err)
	}
}
