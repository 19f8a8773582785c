package usecase

import (
	"context"

	"fitstat/internal/modules/journal/domain"
	journaldto "fitstat/internal/modules/journal/dto"
	journalin "fitstat/internal/modules/journal/port/in"
	"fitstat/internal/modules/journal/service"
	"fitstat/internal/platform/tx"
)

type Interactor struct {
	svc *service.JournalService
	tx  tx.Manager
}

func NewInteractor(svc *service.JournalService, txm tx.Manager) journalin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &Interactor{svc: svc, tx: txm}
}

func (i *Interactor) Record(ctx context.Context, input journaldto.RecordInput) (journaldto.EntryOutput, error) {
	entry, err := i.svc.NewEntry(input.Code, input.TrainingType, input.DurationH, input.DistanceKm, input.SpeedKmh, input.Calories, input.Message)
	if err != nil {
		return journaldto.EntryOutput{}, err
	}
	var saved domain.Entry
	err = i.tx.Within(ctx, func(ctx context.Context) error {
		var saveErr error
		saved, saveErr = i.svc.Save(ctx, entry)
		return saveErr
	})
	if err != nil {
		return journaldto.EntryOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) List(ctx context.Context, input journaldto.ListInput) ([]journaldto.EntryOutput, error) {
	entries, err := i.svc.List(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]journaldto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toOutput(e))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (journaldto.EntryOutput, error) {
	entry, err := i.svc.Get(ctx, id)
	if err != nil {
		return journaldto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func toOutput(e domain.Entry) journaldto.EntryOutput {
	return journaldto.EntryOutput{
		ID:           e.ID,
		Code:         e.Code,
		TrainingType: e.TrainingType,
		DurationH:    e.DurationH,
		DistanceKm:   e.DistanceKm,
		SpeedKmh:     e.SpeedKmh,
		Calories:     e.Calories,
		Message:      e.Message,
		RecordedAt:   e.RecordedAt,
		NotePath:     e.NotePath,
		NoteBody:     e.NoteBody,
	}
}
