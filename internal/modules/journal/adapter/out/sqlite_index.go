package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fitstat/internal/modules/journal/domain"
	journalout "fitstat/internal/modules/journal/port/out"
	apperrors "fitstat/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// Fixed-width UTC layout so recorded_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteEntryIndex struct {
	db *sql.DB
}

func NewSQLiteEntryIndex(dbPath string) (journalout.EntryIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	index := &SQLiteEntryIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return index, nil
}

func (s *SQLiteEntryIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS workouts (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL,
  training_type TEXT NOT NULL,
  duration_hours REAL NOT NULL,
  distance_km REAL NOT NULL,
  speed_kmh REAL NOT NULL,
  calories REAL NOT NULL,
  message TEXT NOT NULL,
  note_path TEXT,
  recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS workouts_recorded_at ON workouts (recorded_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create workouts table: %w", err)
	}
	return nil
}

func (s *SQLiteEntryIndex) Upsert(ctx context.Context, entry domain.Entry) error {
	const stmt = `
INSERT INTO workouts (id, code, training_type, duration_hours, distance_km, speed_kmh, calories, message, note_path, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  code=excluded.code,
  training_type=excluded.training_type,
  duration_hours=excluded.duration_hours,
  distance_km=excluded.distance_km,
  speed_kmh=excluded.speed_kmh,
  calories=excluded.calories,
  message=excluded.message,
  note_path=excluded.note_path,
  recorded_at=excluded.recorded_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.Code,
		entry.TrainingType,
		entry.DurationH,
		entry.DistanceKm,
		entry.SpeedKmh,
		entry.Calories,
		entry.Message,
		entry.NotePath,
		entry.RecordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert workout: %w", err)
	}
	return nil
}

const selectColumns = `id, code, training_type, duration_hours, distance_km, speed_kmh, calories, message, note_path, recorded_at`

func (s *SQLiteEntryIndex) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM workouts ORDER BY recorded_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	out := []domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return out, nil
}

func (s *SQLiteEntryIndex) Get(ctx context.Context, id string) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM workouts WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Entry{}, fmt.Errorf("workout %q: %w", id, apperrors.ErrNotFound)
	}
	return entry, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.Entry, error) {
	var (
		entry      domain.Entry
		notePath   sql.NullString
		recordedAt string
	)
	err := row.Scan(
		&entry.ID,
		&entry.Code,
		&entry.TrainingType,
		&entry.DurationH,
		&entry.DistanceKm,
		&entry.SpeedKmh,
		&entry.Calories,
		&entry.Message,
		&notePath,
		&recordedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Entry{}, err
		}
		return domain.Entry{}, fmt.Errorf("scan workout: %w", err)
	}
	entry.NotePath = notePath.String
	parsed, err := time.Parse(timeLayout, recordedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
	}
	entry.RecordedAt = parsed
	return entry, nil
}
