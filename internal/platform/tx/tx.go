package tx

import "context"

// Manager groups the journal note write and the index upsert under one boundary.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

// NoopManager runs fn directly. The journal service compensates a failed index
// write by removing the note it just wrote.
type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
