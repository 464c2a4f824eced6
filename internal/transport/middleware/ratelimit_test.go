package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimited(t *testing.T, perMinute int) (http.Handler, *RateLimiter, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(clock, time.Minute)
	t.Cleanup(rl.Stop)

	handler := rl.Limit(perMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return handler, rl, clock
}

func hit(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/folders", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	handler, _, _ := newLimited(t, 5)

	for i := range 5 {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}

	rec := hit(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_KeysByIPNotPort(t *testing.T) {
	handler, _, _ := newLimited(t, 2)

	assert.Equal(t, http.StatusOK, hit(handler, "1.1.1.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "1.1.1.1:2000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "1.1.1.1:3000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "2.2.2.2:5678").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	// 60 per minute = 1 per second
	handler, _, clock := newLimited(t, 60)

	for range 60 {
		hit(handler, "3.3.3.3:1234")
	}
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "3.3.3.3:1234").Code)

	clock.Advance(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(handler, "3.3.3.3:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "3.3.3.3:1234").Code)
}

func TestRateLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	handler, rl, clock := newLimited(t, 10)

	hit(handler, "4.4.4.4:1234")
	require.Equal(t, 1, rl.size())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1), "cleanup ticker not started")

	clock.Advance(bucketIdleTTL + time.Minute)

	assert.Eventually(t, func() bool { return rl.size() == 0 }, time.Second, 5*time.Millisecond)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(clockwork.NewFakeClock(), time.Minute)
	rl.Stop()
	rl.Stop()
}
