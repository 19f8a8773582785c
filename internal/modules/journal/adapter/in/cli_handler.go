package in

import (
	"context"

	journaldto "fitstat/internal/modules/journal/dto"
	journalin "fitstat/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]journaldto.EntryOutput, error) {
	return h.usecase.List(ctx, journaldto.ListInput{Limit: limit})
}

func (h CLIHandler) Get(ctx context.Context, id string) (journaldto.EntryOutput, error) {
	return h.usecase.Get(ctx, id)
}
