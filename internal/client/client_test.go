package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apartment-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFiltersValues(t *testing.T) {
	f := Filters{
		Search:   "garden",
		Project:  "O West",
		MinPrice: floatPtr(1500000),
		Bedrooms: intPtr(3),
		Page:     2,
		Limit:    12,
	}

	v := f.Values()
	assert.Equal(t, "garden", v.Get("search"))
	assert.Equal(t, "O West", v.Get("project"))
	assert.Equal(t, "1500000", v.Get("minPrice"))
	assert.Equal(t, "3", v.Get("bedrooms"))
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "12", v.Get("limit"))

	// Absent fields are omitted entirely.
	assert.False(t, v.Has("maxPrice"))
	assert.False(t, v.Has("bathrooms"))
}

func TestFiltersValues_Empty(t *testing.T) {
	assert.Empty(t, Filters{}.Values().Encode())
}

func TestSearchApartments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/apartments", r.URL.Path)
		assert.Equal(t, "giza", r.URL.Query().Get("search"))
		_ = json.NewEncoder(w).Encode(models.PaginatedApartments{
			Data: []models.Apartment{{ID: "id-1", UnitNumber: "B-205"}},
			Meta: models.PageMeta{Total: 1, Page: 1, Limit: 12, TotalPages: 1},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	result, err := c.SearchApartments(context.Background(), Filters{Search: "giza"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "B-205", result.Data[0].UnitNumber)
	assert.Equal(t, int64(1), result.Meta.Total)
}

func TestGetApartment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 404,
			"message":    "Apartment with ID abc not found",
			"error":      "Not Found",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetApartment(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsServerUnavailable(err))
	assert.Equal(t, "Apartment with ID abc not found", ErrorMessage(err))
}

func TestCreateApartment_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 409,
			"message":    `apartment with unit number "A-101" already exists`,
			"error":      "Conflict",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.CreateApartment(context.Background(), map[string]string{"unitNumber": "A-101"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Contains(t, ErrorMessage(err), "A-101")
}

func TestServerError_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetProjects(context.Background())
	require.Error(t, err)
	assert.True(t, IsServerUnavailable(err))
	assert.Equal(t, "Server is currently unavailable. Please try again later.", ErrorMessage(err))
}

func TestConnectionRefused_IsUnavailable(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.GetProjects(context.Background())
	require.Error(t, err)
	assert.True(t, IsServerUnavailable(err))
}

func TestTimeout_IsUnavailable(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer func() {
		close(blocked)
		srv.Close()
	}()

	c := New(srv.URL, 50*time.Millisecond)
	_, err := c.GetProjects(context.Background())
	require.Error(t, err)
	assert.True(t, IsServerUnavailable(err))
}

func TestGetProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/apartments/projects", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]string{"Il Bosco", "O West"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	projects, err := c.GetProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Il Bosco", "O West"}, projects)
}
