package out

import (
	"context"

	"fitstat/internal/modules/training/domain"
)

type PackageSource interface {
	Load(ctx context.Context, path string) ([]domain.Package, error)
}
