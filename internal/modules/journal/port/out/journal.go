package out

import (
	"context"

	"fitstat/internal/modules/journal/domain"
)

type NoteStore interface {
	Save(ctx context.Context, entry domain.Entry) (string, error)
	// Load returns the id recorded in the note's frontmatter and its body.
	Load(ctx context.Context, path string) (id string, body string, err error)
	Delete(ctx context.Context, path string) error
}

type EntryIndex interface {
	Upsert(ctx context.Context, entry domain.Entry) error
	List(ctx context.Context, limit int) ([]domain.Entry, error)
	Get(ctx context.Context, id string) (domain.Entry, error)
}
