package blob

import (
	"context"
	"log/slog"
	"sync"

	"visitordesk/internal/blobstore"
	"visitordesk/internal/domain"
)

type visitorRepository struct {
	store  blobstore.Store
	logger *slog.Logger

	mu       sync.RWMutex
	visitors []domain.Visitor
}

// NewVisitorRepository hydrates the visitor collection from the store.
func NewVisitorRepository(ctx context.Context, store blobstore.Store, logger *slog.Logger) domain.VisitorRepository {
	return &visitorRepository{
		store:    store,
		logger:   logger,
		visitors: loadCollection[domain.Visitor](ctx, store, blobstore.KeyVisitors, logger),
	}
}

func (r *visitorRepository) List(_ context.Context) ([]*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Visitor, 0, len(r.visitors))
	for i := range r.visitors {
		v := r.visitors[i]
		out = append(out, &v)
	}
	return out, nil
}

func (r *visitorRepository) GetByID(_ context.Context, id string) (*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.visitors {
		if r.visitors[i].ID == id {
			v := r.visitors[i]
			return &v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *visitorRepository) Append(ctx context.Context, v *domain.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visitors = append(r.visitors, *v)
	return saveCollection(ctx, r.store, blobstore.KeyVisitors, r.visitors)
}

func (r *visitorRepository) Update(ctx context.Context, v *domain.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.visitors {
		if r.visitors[i].ID == v.ID {
			r.visitors[i] = *v
			return saveCollection(ctx, r.store, blobstore.KeyVisitors, r.visitors)
		}
	}
	return domain.ErrNotFound
}
