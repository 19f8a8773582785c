package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	journalout "fitstat/internal/modules/journal/adapter/out"
	"fitstat/internal/modules/journal/domain"
	"fitstat/internal/modules/journal/service"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC)
}

type fixedID struct{}

func (fixedID) New() string {
	return "0f8a2c1e-0000-4000-8000-000000000001"
}

type failingIndex struct {
	err error
}

func (f failingIndex) Upsert(context.Context, domain.Entry) error {
	return f.err
}

func (f failingIndex) List(context.Context, int) ([]domain.Entry, error) {
	return nil, nil
}

func (f failingIndex) Get(context.Context, string) (domain.Entry, error) {
	return domain.Entry{}, f.err
}

type staticIndex struct {
	entry domain.Entry
}

func (s staticIndex) Upsert(context.Context, domain.Entry) error {
	return nil
}

func (s staticIndex) List(context.Context, int) ([]domain.Entry, error) {
	return []domain.Entry{s.entry}, nil
}

func (s staticIndex) Get(context.Context, string) (domain.Entry, error) {
	return s.entry, nil
}

func newEntry(t *testing.T, svc *service.JournalService) domain.Entry {
	t.Helper()
	entry, err := svc.NewEntry("RUN", "Running", 1, 9.75, 9.75, 699.75, "running line")
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	return entry
}

func TestSaveRemovesNoteWhenIndexFails(t *testing.T) {
	t.Parallel()
	notesDir := filepath.Join(t.TempDir(), "workouts")
	indexErr := errors.New("database is locked")
	svc := service.NewJournalService(fixedClock{}, fixedID{}, journalout.NewVaultNoteStore(notesDir), failingIndex{err: indexErr})

	_, err := svc.Save(context.Background(), newEntry(t, svc))
	if !errors.Is(err, indexErr) {
		t.Fatalf("expected index error, got %v", err)
	}

	dayDir := filepath.Join(notesDir, "2026", "03", "01")
	files, err := os.ReadDir(dayDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("read note dir: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("note must not outlive a failed index write, found %d file(s)", len(files))
	}
}

func TestGetRejectsNoteOfAnotherEntry(t *testing.T) {
	t.Parallel()
	notesDir := filepath.Join(t.TempDir(), "workouts")
	notes := journalout.NewVaultNoteStore(notesDir)
	svc := service.NewJournalService(fixedClock{}, fixedID{}, notes, staticIndex{})

	entry := newEntry(t, svc)
	path, err := notes.Save(context.Background(), entry)
	if err != nil {
		t.Fatalf("save note: %v", err)
	}

	other := entry
	other.ID = "another-id"
	other.NotePath = path
	svc = service.NewJournalService(fixedClock{}, fixedID{}, notes, staticIndex{entry: other})
	if _, err := svc.Get(context.Background(), other.ID); err == nil || !strings.Contains(err.Error(), "belongs to") {
		t.Fatalf("expected mismatched note error, got %v", err)
	}

	entry.NotePath = path
	svc = service.NewJournalService(fixedClock{}, fixedID{}, notes, staticIndex{entry: entry})
	got, err := svc.Get(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(got.NoteBody, "running line") {
		t.Fatalf("expected note body, got %q", got.NoteBody)
	}
}

func TestListAppliesDefaultLimit(t *testing.T) {
	t.Parallel()
	var seen int
	svc := service.NewJournalService(fixedClock{}, fixedID{}, nil, limitIndex{seen: &seen})
	if _, err := svc.List(context.Background(), 0); err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen != service.DefaultListLimit {
		t.Fatalf("expected default limit %d, got %d", service.DefaultListLimit, seen)
	}
}

type limitIndex struct {
	seen *int
}

func (l limitIndex) Upsert(context.Context, domain.Entry) error {
	return nil
}

func (l limitIndex) List(_ context.Context, limit int) ([]domain.Entry, error) {
	*l.seen = limit
	return nil, nil
}

func (l limitIndex) Get(context.Context, string) (domain.Entry, error) {
	return domain.Entry{}, nil
}
