// Package store provides the client-side resource caches. The app used to
// carry one hand-written context per entity, all identical except for the
// entity type; here a single generic store is instantiated per entity.
package store

import (
	"context"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
)

// ResourceAPI is the uniform call shape a store needs from the API client.
// *api.Group satisfies it directly; irregular resources adapt.
type ResourceAPI[T any] interface {
	List(ctx context.Context, q url.Values) ([]T, error)
	Get(ctx context.Context, id models.ID) (T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id models.ID, payload any) (T, error)
	Delete(ctx context.Context, id models.ID) error
}

// Store caches one entity's list and detail records with loading/error flags.
// Only its own operations mutate the cache. No optimistic updates, no
// retries, no request deduplication; a failed call leaves the cache as it
// was and records the error message for the screen to display.
type Store[T any] struct {
	name   string
	api    ResourceAPI[T]
	idOf   func(T) models.ID
	filter url.Values
	logger *zap.Logger

	mu      sync.Mutex
	items   []T
	detail  map[models.ID]T
	loading bool
	errMsg  string
}

// New creates a store over one resource. idOf extracts the server id used to
// keep the cache consistent after update and delete.
func New[T any](name string, resource ResourceAPI[T], idOf func(T) models.ID, logger *zap.Logger) *Store[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store[T]{
		name:   name,
		api:    resource,
		idOf:   idOf,
		detail: make(map[models.ID]T),
		logger: logger.With(zap.String("store", name)),
	}
}

// WithFilter returns a store scoped to a fixed list filter, e.g. one event's
// participants. The scoped store shares nothing with the parent cache.
func (s *Store[T]) WithFilter(q url.Values) *Store[T] {
	scoped := New(s.name, s.api, s.idOf, s.logger)
	scoped.filter = q
	return scoped
}

// begin flips the loading flag and clears the previous error.
func (s *Store[T]) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

// finish records the outcome and drops the loading flag.
func (s *Store[T]) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = api.ErrorMessage(err)
		s.logger.Warn("operation failed", zap.String("error", s.errMsg))
	}
}

// FetchAll refreshes the list cache from the server.
func (s *Store[T]) FetchAll(ctx context.Context) ([]T, error) {
	s.begin()
	items, err := s.api.List(ctx, s.filter)
	s.finish(err)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

// FetchOne refreshes one record in the detail cache.
func (s *Store[T]) FetchOne(ctx context.Context, id models.ID) (T, error) {
	s.begin()
	item, err := s.api.Get(ctx, id)
	s.finish(err)
	if err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	s.detail[id] = item
	s.mu.Unlock()
	return item, nil
}

// Create persists a new record and appends it to the list cache.
func (s *Store[T]) Create(ctx context.Context, payload any) (T, error) {
	s.begin()
	item, err := s.api.Create(ctx, payload)
	s.finish(err)
	if err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	s.items = append(s.items, item)
	s.detail[s.idOf(item)] = item
	s.mu.Unlock()
	return item, nil
}

// Update persists changes to a record and replaces it in the caches.
func (s *Store[T]) Update(ctx context.Context, id models.ID, payload any) (T, error) {
	s.begin()
	item, err := s.api.Update(ctx, id, payload)
	s.finish(err)
	if err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			s.items[i] = item
			break
		}
	}
	s.detail[id] = item
	s.mu.Unlock()
	return item, nil
}

// Delete removes a record and drops it from the caches.
func (s *Store[T]) Delete(ctx context.Context, id models.ID) error {
	s.begin()
	err := s.api.Delete(ctx, id)
	s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	delete(s.detail, id)
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the cached list.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Detail returns the cached record for id, if any.
func (s *Store[T]) Detail(id models.ID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.detail[id]
	return item, ok
}

// Loading reports whether an operation is in flight.
func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last operation's error message, empty after a success.
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
