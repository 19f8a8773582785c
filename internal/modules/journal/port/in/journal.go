package in

import (
	"context"

	"fitstat/internal/modules/journal/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.EntryOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.EntryOutput, error)
	Get(ctx context.Context, id string) (dto.EntryOutput, error)
}
