package webapp

import (
	"context"
	"log/slog"
	"time"

	"apartment-portal/internal/client"
	"apartment-portal/internal/models"
)

// API is the slice of the apartments client the frontend needs.
type API interface {
	SearchApartments(ctx context.Context, f client.Filters) (*models.PaginatedApartments, error)
	GetApartment(ctx context.Context, id string) (*models.Apartment, error)
	GetProjects(ctx context.Context) ([]string, error)
}

// session holds the per-browser-session state: the filter state manager and
// the response cache it owns. The cache is created with the session and
// discarded with it; it is never shared across sessions.
type session struct {
	id     string
	state  *FilterState
	cache  *ResponseCache
	api    API
	logger *slog.Logger

	// lastSeen is guarded by the server's session mutex, not the session.
	lastSeen time.Time
}

func newSession(id string, api API, debounce time.Duration, logger *slog.Logger) *session {
	sess := &session{
		id:     id,
		cache:  NewResponseCache(),
		api:    api,
		logger: logger,
	}
	sess.state = NewFilterState(debounce, sess.onFiltersChanged)
	return sess
}

// onFiltersChanged runs when a debounced filter edit is promoted or the user
// navigates to another page. A filter change invalidates the whole cache;
// a page-only change keeps earlier pages cached.
func (s *session) onFiltersChanged(f client.Filters, pageOnly bool) {
	if !pageOnly {
		s.cache.Clear()
	}
	// Warm the cache so the next render is served without a network call.
	if _, err := s.fetch(context.Background(), f); err != nil {
		s.logger.Warn("background fetch failed", "session", s.id, "error", err)
	}
}

// fetch returns the cached response for (page, filters) or performs the
// network call and stores the result.
func (s *session) fetch(ctx context.Context, f client.Filters) (*models.PaginatedApartments, error) {
	if resp, ok := s.cache.Get(f); ok {
		return resp, nil
	}
	resp, err := s.api.SearchApartments(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.Put(f, resp)
	return resp, nil
}

func (s *session) close() {
	s.state.Stop()
}
