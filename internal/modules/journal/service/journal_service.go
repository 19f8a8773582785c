package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"fitstat/internal/modules/journal/domain"
	journalout "fitstat/internal/modules/journal/port/out"
	"fitstat/internal/platform/clock"
	"fitstat/internal/platform/id"
)

const DefaultListLimit = 20

type JournalService struct {
	clock clock.Clock
	idGen id.Generator
	notes journalout.NoteStore
	index journalout.EntryIndex
}

func NewJournalService(clock clock.Clock, idGen id.Generator, notes journalout.NoteStore, index journalout.EntryIndex) *JournalService {
	return &JournalService{clock: clock, idGen: idGen, notes: notes, index: index}
}

// NewEntry stamps a summary with an id and the current time.
func (s *JournalService) NewEntry(code, trainingType string, durationH, distanceKm, speedKmh, calories float64, message string) (domain.Entry, error) {
	entry := domain.Entry{
		ID:           s.idGen.New(),
		Code:         strings.TrimSpace(code),
		TrainingType: strings.TrimSpace(trainingType),
		DurationH:    durationH,
		DistanceKm:   distanceKm,
		SpeedKmh:     speedKmh,
		Calories:     calories,
		Message:      message,
		RecordedAt:   s.clock.Now(),
	}
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

// Save writes the markdown note first, then indexes the entry with its note
// path. A note whose index row could not be written is removed again.
func (s *JournalService) Save(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	if s.notes != nil {
		path, err := s.notes.Save(ctx, entry)
		if err != nil {
			return domain.Entry{}, err
		}
		entry.NotePath = path
	}
	if err := s.index.Upsert(ctx, entry); err != nil {
		if s.notes != nil && entry.NotePath != "" {
			if delErr := s.notes.Delete(ctx, entry.NotePath); delErr != nil {
				err = errors.Join(err, fmt.Errorf("remove orphaned note %s: %w", entry.NotePath, delErr))
			}
		}
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *JournalService) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.index.List(ctx, limit)
}

// Get returns the indexed entry together with its note body. A note removed
// by hand leaves NoteBody empty.
func (s *JournalService) Get(ctx context.Context, id string) (domain.Entry, error) {
	entry, err := s.index.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return domain.Entry{}, err
	}
	if s.notes == nil || entry.NotePath == "" {
		return entry, nil
	}
	noteID, body, err := s.notes.Load(ctx, entry.NotePath)
	if errors.Is(err, fs.ErrNotExist) {
		return entry, nil
	}
	if err != nil {
		return domain.Entry{}, err
	}
	if noteID != entry.ID {
		return domain.Entry{}, fmt.Errorf("note %s belongs to %q, not %q", entry.NotePath, noteID, entry.ID)
	}
	entry.NoteBody = body
	return entry, nil
}
