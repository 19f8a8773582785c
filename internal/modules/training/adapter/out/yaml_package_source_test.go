package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	trainingout "fitstat/internal/modules/training/adapter/out"
	"fitstat/internal/modules/training/domain"
	apperrors "fitstat/internal/platform/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestYAMLPackageSourceLoads(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "packages:\n  - code: SWM\n    data: [720, 1, 80, 25, 40]\n  - code: ' WLK '\n    data: [9000, 1, 75, 180]\n")
	pkgs, err := trainingout.NewYAMLPackageSource().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(pkgs))
	}
	if pkgs[0].Code != domain.CodeSwimming || len(pkgs[0].Data) != 5 || pkgs[0].Data[3] != 25 {
		t.Fatalf("unexpected first package %+v", pkgs[0])
	}
	if pkgs[1].Code != domain.CodeWalking {
		t.Fatalf("code should be trimmed, got %q", pkgs[1].Code)
	}
}

func TestYAMLPackageSourceRejectsBadFiles(t *testing.T) {
	t.Parallel()
	source := trainingout.NewYAMLPackageSource()
	cases := map[string]string{
		"empty":            "",
		"no packages":      "packages: []\n",
		"missing code":     "packages:\n  - data: [1, 2, 3]\n",
		"non-numeric data": "packages:\n  - code: RUN\n    data: [abc, 1, 75]\n",
		"unknown field":    "packages:\n  - code: RUN\n    values: [1]\n",
		"not a mapping":    "- RUN\n",
	}
	for name, content := range cases {
		if _, err := source.Load(context.Background(), writeFile(t, content)); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
	_, err := source.Load(context.Background(), writeFile(t, "packages:\n  - code: RUN\n    data: [abc]\n"))
	if err == nil || !strings.Contains(err.Error(), "abc") {
		t.Fatalf("decode error should keep the yaml detail, got %v", err)
	}
	if _, err := source.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file must fail")
	}
}
