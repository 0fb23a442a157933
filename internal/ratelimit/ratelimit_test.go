package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowRequest_MinuteLimit(t *testing.T) {
	rl := NewRateLimiter(3, 100, true)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.AllowRequest(), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.AllowRequest(), "4th request should exceed the minute limit")
}

func TestAllowRequest_HourLimit(t *testing.T) {
	rl := NewRateLimiter(0, 2, true)

	assert.True(t, rl.AllowRequest())
	assert.True(t, rl.AllowRequest())
	assert.False(t, rl.AllowRequest())
}

func TestAllowRequest_Disabled(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)

	for i := 0; i < 10; i++ {
		assert.True(t, rl.AllowRequest())
	}
}

func TestReset(t *testing.T) {
	rl := NewRateLimiter(2, 100, true)

	rl.AllowRequest()
	rl.AllowRequest()
	require.False(t, rl.AllowRequest())

	rl.Reset()
	assert.True(t, rl.AllowRequest())
}

func TestGetStats(t *testing.T) {
	rl := NewRateLimiter(5, 50, true)

	rl.AllowRequest()
	rl.AllowRequest()

	stats := rl.GetStats()
	assert.True(t, stats.Enabled)
	assert.Equal(t, 2, stats.RequestsLastMinute)
	assert.Equal(t, 2, stats.RequestsLastHour)
	assert.Equal(t, 5, stats.LimitPerMinute)
	assert.Equal(t, 3, stats.RemainingThisMinute)
	assert.Equal(t, 48, stats.RemainingThisHour)
}

func TestGetStats_Disabled(t *testing.T) {
	rl := NewRateLimiter(5, 50, false)

	stats := rl.GetStats()
	assert.False(t, stats.Enabled)
	assert.Equal(t, 0, stats.RequestsLastMinute)
}

func TestMiddleware_TooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(2, 100, true)
	router := gin.New()
	router.POST("/apartments", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/apartments", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/apartments", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}
