package webapp

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"apartment-portal/internal/client"
	"apartment-portal/internal/models"
)

// ResponseCache memoizes paginated listing responses for the current
// session. Entries have no TTL and no size bound; the cache lives and dies
// with the session that owns it. Callers must Clear it on any filter change.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]*models.PaginatedApartments
}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{entries: make(map[string]*models.PaginatedApartments)}
}

// CacheKey builds a canonical order-independent key from the page number
// and each present filter field. Absent fields contribute nothing, so two
// filter sets with the same effective fields always collide on the same key.
func CacheKey(f client.Filters) string {
	page := f.Page
	if page < 1 {
		page = 1
	}
	parts := []string{"page=" + strconv.Itoa(page)}
	if f.Search != "" {
		parts = append(parts, "search="+f.Search)
	}
	if f.Project != "" {
		parts = append(parts, "project="+f.Project)
	}
	if f.MinPrice != nil {
		parts = append(parts, "minPrice="+strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		parts = append(parts, "maxPrice="+strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Bedrooms != nil {
		parts = append(parts, "bedrooms="+strconv.Itoa(*f.Bedrooms))
	}
	if f.Bathrooms != nil {
		parts = append(parts, "bathrooms="+strconv.Itoa(*f.Bathrooms))
	}
	sort.Strings(parts)
	return strings.Join(parts, "&")
}

func (c *ResponseCache) Get(f client.Filters) (*models.PaginatedApartments, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, ok := c.entries[CacheKey(f)]
	return resp, ok
}

func (c *ResponseCache) Put(f client.Filters, resp *models.PaginatedApartments) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[CacheKey(f)] = resp
}

// Clear drops every entry. Called when the effective filter set changes.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*models.PaginatedApartments)
}

func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
