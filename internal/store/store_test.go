package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
)

// participantServer is a small in-memory /participants backend so the store is
// tested through the real HTTP client rather than a hand-rolled fake.
type participantServer struct {
	mu    sync.Mutex
	next  int
	items map[models.ID]models.Participant

	failNext bool
}

func newParticipantServer() *participantServer {
	return &participantServer{items: make(map[models.ID]models.Participant)}
}

func (s *participantServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/participants", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.takeFailure(w) {
				return
			}
			filter := r.URL.Query().Get("event_id")
			out := make([]models.Participant, 0, len(s.items))
			for _, p := range s.items {
				if filter == "" || p.EventID.String() == filter {
					out = append(out, p)
				}
			}
			_ = json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.takeFailure(w) {
				return
			}
			var p models.Participant
			_ = json.NewDecoder(r.Body).Decode(&p)
			s.next++
			p.ID = models.ID(fmt.Sprintf("%d", s.next))
			s.items[p.ID] = p
			_ = json.NewEncoder(w).Encode(p)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/participants/", func(w http.ResponseWriter, r *http.Request) {
		id := models.ID(strings.TrimPrefix(r.URL.Path, "/participants/"))
		switch r.Method {
		case http.MethodGet:
			s.mu.Lock()
			defer s.mu.Unlock()
			p, ok := s.items[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "participante no encontrado"})
				return
			}
			_ = json.NewEncoder(w).Encode(p)
		case http.MethodPut:
			s.mu.Lock()
			defer s.mu.Unlock()
			var p models.Participant
			_ = json.NewDecoder(r.Body).Decode(&p)
			p.ID = id
			s.items[id] = p
			_ = json.NewEncoder(w).Encode(p)
		case http.MethodDelete:
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.takeFailure(w) {
				return
			}
			delete(s.items, id)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func (s *participantServer) takeFailure(w http.ResponseWriter) bool {
	if !s.failNext {
		return false
	}
	s.failNext = false
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "algo salió mal"})
	return true
}

func newTestStore(t *testing.T) (*Store[models.Participant], *participantServer) {
	t.Helper()
	backend := newParticipantServer()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	st := New("participants", client.Participants(), func(p models.Participant) models.ID { return p.ID }, nil)
	return st, backend
}

func TestStore_CreateThenFetchAll(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Participant{Name: "Ana", Email: "ana@example.com", EventID: "evt-1"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	items, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ana", items[0].Name)
	assert.Equal(t, created.ID, items[0].ID)

	// Create already seeded the caches.
	cached, ok := st.Detail(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Ana", cached.Name)
	assert.Empty(t, st.Err())
	assert.False(t, st.Loading())
}

func TestStore_DeleteRemovesFromCaches(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	ana, err := st.Create(ctx, models.Participant{Name: "Ana", EventID: "evt-1"})
	require.NoError(t, err)
	luis, err := st.Create(ctx, models.Participant{Name: "Luis", EventID: "evt-1"})
	require.NoError(t, err)

	require.NoError(t, st.Delete(ctx, ana.ID))

	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, luis.ID, items[0].ID)
	_, ok := st.Detail(ana.ID)
	assert.False(t, ok)
}

func TestStore_UpdateReplacesCachedRecord(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Participant{Name: "Ana", EventID: "evt-1"})
	require.NoError(t, err)

	updated, err := st.Update(ctx, created.ID, models.Participant{Name: "Ana María", EventID: "evt-1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)

	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Ana María", items[0].Name)
	cached, _ := st.Detail(created.ID)
	assert.Equal(t, "Ana María", cached.Name)
}

func TestStore_FetchOnePopulatesDetail(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Participant{Name: "Ana", EventID: "evt-1"})
	require.NoError(t, err)

	got, err := st.FetchOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	cached, ok := st.Detail(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, cached.ID)
}

func TestStore_FetchOneNotFoundRecordsServerMessage(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.FetchOne(context.Background(), "999")

	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, "participante no encontrado", st.Err())
}

func TestStore_FailureKeepsCacheAndRecordsError(t *testing.T) {
	st, backend := newTestStore(t)
	ctx := context.Background()

	created, err := st.Create(ctx, models.Participant{Name: "Ana", EventID: "evt-1"})
	require.NoError(t, err)
	_, err = st.FetchAll(ctx)
	require.NoError(t, err)

	backend.failNext = true
	_, err = st.FetchAll(ctx)
	require.Error(t, err)

	// The list cache still holds the last good result.
	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "algo salió mal", st.Err())
	assert.False(t, st.Loading())

	// The next successful call clears the error.
	_, err = st.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.Err())
}

func TestStore_WithFilterScopesListQueries(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.Create(ctx, models.Participant{Name: "Ana", EventID: "evt-1"})
	require.NoError(t, err)
	_, err = st.Create(ctx, models.Participant{Name: "Luis", EventID: "evt-2"})
	require.NoError(t, err)

	scoped := st.WithFilter(api.ByEvent("evt-1"))
	items, err := scoped.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ana", items[0].Name)

	// The scoped store never touches the parent cache.
	assert.Len(t, st.Items(), 2)
}
