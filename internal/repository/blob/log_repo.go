package blob

import (
	"context"
	"log/slog"
	"sync"

	"visitordesk/internal/blobstore"
	"visitordesk/internal/domain"
)

type logRepository struct {
	store  blobstore.Store
	logger *slog.Logger

	mu      sync.RWMutex
	entries []domain.LogEntry // newest first, as stored
}

// NewLogRepository hydrates the audit log from the store.
func NewLogRepository(ctx context.Context, store blobstore.Store, logger *slog.Logger) domain.LogRepository {
	return &logRepository{
		store:   store,
		logger:  logger,
		entries: loadCollection[domain.LogEntry](ctx, store, blobstore.KeyLogs, logger),
	}
}

func (r *logRepository) List(_ context.Context) ([]*domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.LogEntry, 0, len(r.entries))
	for i := range r.entries {
		e := r.entries[i]
		out = append(out, &e)
	}
	return out, nil
}

func (r *logRepository) Prepend(ctx context.Context, e *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]domain.LogEntry{*e}, r.entries...)
	return saveCollection(ctx, r.store, blobstore.KeyLogs, r.entries)
}
