package webapp

import (
	"net/url"
	"strconv"
	"sync"
	"time"

	"apartment-portal/internal/client"
)

// Origin says who caused a state transition. User edits arm the debounce
// and eventually fire the change callback; external syncs (address bar,
// back/forward navigation) must never fire it.
type Origin int

const (
	OriginUser Origin = iota
	OriginExternal
)

// ChangeFunc receives the effective filter set (page included) after a
// user-driven transition. pageOnly is true for page navigation that left
// the filter fields untouched; consumers clear their response cache only
// when it is false.
type ChangeFunc func(f client.Filters, pageOnly bool)

// FilterState owns the draft and effective filter values and the current
// page. User edits update the draft immediately; after the quiescence
// window with no further edits the draft is promoted to the effective set
// and the page resets to 1.
type FilterState struct {
	mu        sync.Mutex
	draft     client.Filters // page/limit carried separately
	effective client.Filters
	page      int
	debounce  time.Duration
	timer     *time.Timer
	onChange  ChangeFunc
	stopped   bool
}

// NewFilterState creates a filter state manager. onChange may be nil.
func NewFilterState(debounce time.Duration, onChange ChangeFunc) *FilterState {
	return &FilterState{
		page:     1,
		debounce: debounce,
		onChange: onChange,
	}
}

// Edit applies a change to the draft filter fields. A user edit restarts the
// single-shot debounce timer; an external edit updates both draft and
// effective state silently.
func (s *FilterState) Edit(origin Origin, mutate func(f *client.Filters)) {
	s.mu.Lock()
	mutate(&s.draft)
	if origin == OriginExternal {
		s.effective = s.draft
		s.stopTimerLocked()
		s.mu.Unlock()
		return
	}
	s.restartTimerLocked()
	s.mu.Unlock()
}

// SetPage changes the current page without touching the filter fields. A
// user-initiated page change notifies immediately; page changes are never
// debounced.
func (s *FilterState) SetPage(origin Origin, page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	cb := s.onChange
	snapshot := s.effectiveLocked()
	s.mu.Unlock()

	if origin == OriginUser && cb != nil {
		cb(snapshot, true)
	}
}

// SyncFromURL re-derives draft and effective state from query parameters.
// This is a pure re-synchronization: any pending debounce is cancelled and
// no change notification fires.
func (s *FilterState) SyncFromURL(values url.Values) {
	f := ParseQuery(values)
	s.mu.Lock()
	page := f.Page
	if page < 1 {
		page = 1
	}
	f.Page = 0
	s.draft = f
	s.effective = f
	s.page = page
	s.stopTimerLocked()
	s.mu.Unlock()
}

// Effective returns the filters currently driving queries, page included.
func (s *FilterState) Effective() client.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveLocked()
}

// Draft returns the in-progress filter edits.
func (s *FilterState) Draft() client.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// EncodeQuery renders the effective state as address-bar query parameters:
// exactly the non-empty fields, plus the page number when it is not 1.
func (s *FilterState) EncodeQuery() url.Values {
	s.mu.Lock()
	f := s.effective
	page := s.page
	s.mu.Unlock()

	f.Page = 0
	f.Limit = 0
	values := f.Values()
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	return values
}

// EncodeDraftQuery renders the draft fields as query parameters. This is the
// address the browser should navigate to once the pending edits are promoted;
// page is omitted because promotion resets it to 1.
func (s *FilterState) EncodeDraftQuery() url.Values {
	s.mu.Lock()
	f := s.draft
	s.mu.Unlock()

	f.Page = 0
	f.Limit = 0
	return f.Values()
}

// Stop cancels any pending debounce. Call on teardown.
func (s *FilterState) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.stopTimerLocked()
	s.mu.Unlock()
}

func (s *FilterState) effectiveLocked() client.Filters {
	f := s.effective
	f.Page = s.page
	return f
}

// restartTimerLocked arms the single-shot debounce, replacing any pending
// timer so only the last edit within the window takes effect.
func (s *FilterState) restartTimerLocked() {
	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.promote)
}

func (s *FilterState) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// promote moves the draft to the effective set and resets the page to 1.
// Runs on the timer goroutine.
func (s *FilterState) promote() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.effective = s.draft
	s.page = 1
	cb := s.onChange
	snapshot := s.effectiveLocked()
	s.mu.Unlock()

	if cb != nil {
		cb(snapshot, false)
	}
}

// ParseQuery decodes listing filters from query parameters. Unparseable
// numeric values are ignored, matching lenient address-bar handling.
func ParseQuery(values url.Values) client.Filters {
	var f client.Filters
	f.Search = values.Get("search")
	f.Project = values.Get("project")
	if v := values.Get("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	if v := values.Get("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Bedrooms = &n
		}
	}
	if v := values.Get("bathrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Bathrooms = &n
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Page = n
		}
	}
	return f
}
