package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fitstat/internal/modules/training/domain"
	trainingout "fitstat/internal/modules/training/port/out"
	apperrors "fitstat/internal/platform/errors"
)

type packagesFile struct {
	Packages []packageEntry `yaml:"packages"`
}

type packageEntry struct {
	Code string    `yaml:"code"`
	Data []float64 `yaml:"data"`
}

type YAMLPackageSource struct{}

func NewYAMLPackageSource() trainingout.PackageSource {
	return YAMLPackageSource{}
}

func (YAMLPackageSource) Load(_ context.Context, path string) ([]domain.Package, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read packages file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	file := packagesFile{}
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("packages file %s is empty: %w", path, apperrors.ErrInvalidInput)
		}
		return nil, fmt.Errorf("decode packages file %s: %w: %w", path, apperrors.ErrInvalidInput, err)
	}
	if len(file.Packages) == 0 {
		return nil, fmt.Errorf("packages file %s lists no packages: %w", path, apperrors.ErrInvalidInput)
	}

	out := make([]domain.Package, 0, len(file.Packages))
	for i, entry := range file.Packages {
		code := strings.TrimSpace(entry.Code)
		if code == "" {
			return nil, fmt.Errorf("package #%d has no code: %w", i+1, apperrors.ErrInvalidInput)
		}
		out = append(out, domain.Package{Code: domain.Code(code), Data: entry.Data})
	}
	return out, nil
}
