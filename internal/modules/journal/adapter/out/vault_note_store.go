package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fitstat/internal/modules/journal/domain"
	journalout "fitstat/internal/modules/journal/port/out"
	"fitstat/internal/platform/markdown"
	"fitstat/internal/platform/slug"
)

type VaultNoteStore struct {
	notesPath string
}

func NewVaultNoteStore(notesPath string) journalout.NoteStore {
	return &VaultNoteStore{notesPath: notesPath}
}

func (s *VaultNoteStore) Save(_ context.Context, entry domain.Entry) (string, error) {
	date := entry.RecordedAt
	dir := filepath.Join(s.notesPath, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create workout note dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s.md", date.Format("150405"), slug.Make(entry.TrainingType), shortID(entry.ID))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             entry.ID,
		"code":           entry.Code,
		"training_type":  entry.TrainingType,
		"recorded_at":    entry.RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
		"duration_hours": entry.DurationH,
		"distance_km":    entry.DistanceKm,
		"speed_kmh":      entry.SpeedKmh,
		"calories":       entry.Calories,
	}
	body := fmt.Sprintf("# %s\n\n%s\n", entry.TrainingType, entry.Message)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write workout note: %w", err)
	}
	return path, nil
}

func (s *VaultNoteStore) Load(_ context.Context, path string) (string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read workout note: %w", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		return "", "", fmt.Errorf("workout note %s: %w", path, err)
	}
	id, _ := meta["id"].(string)
	return id, strings.TrimSpace(body), nil
}

func (s *VaultNoteStore) Delete(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove workout note: %w", err)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
