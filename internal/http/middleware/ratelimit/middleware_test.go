package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"agrimarket-delivery/internal/domain"
	"agrimarket-delivery/internal/http/middleware/auth"
	testlog "agrimarket-delivery/internal/testutil"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func okHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*calls++
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_AllowsRequest(t *testing.T) {
	t.Parallel()

	calls := 0
	lim := &stubLimiter{allow: true}
	h := New(testlog.New().Logger(), nil, lim).Handler()(okHandler(&calls))

	r := httptest.NewRequest(http.MethodGet, "/truck-ban/windows", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"ip:1.2.3.4"}, lim.keys)
}

func TestMiddleware_BlocksAndCounts(t *testing.T) {
	t.Parallel()

	calls := 0
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "denied_total", Help: "denied"})
	rec := testlog.New()
	h := New(rec.Logger(), counter, &stubLimiter{allow: false}).Handler()(okHandler(&calls))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/delivery-schedule", nil))

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "1", w.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
	require.Zero(t, calls)
	require.InDelta(t, 1, testutil.ToFloat64(counter), 0)
	require.Len(t, rec.Events("rate_limit_exceeded"), 1)
}

func TestMiddleware_FailsOpenOnLimiterError(t *testing.T) {
	t.Parallel()

	calls := 0
	rec := testlog.New()
	h := New(rec.Logger(), nil, &stubLimiter{err: errors.New("redis down")}).Handler()(okHandler(&calls))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, calls)
	require.Len(t, rec.Events("rate_limit_error"), 1)
}

func TestMiddleware_KeysByCaller(t *testing.T) {
	t.Parallel()

	calls := 0
	lim := &stubLimiter{allow: true}
	h := New(nil, nil, lim).Handler()(okHandler(&calls))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(auth.WithCaller(r.Context(), domain.Caller{UserID: 9}))
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.Equal(t, []string{"user:9"}, lim.keys)
}

func TestMiddleware_NilLimiterAllows(t *testing.T) {
	t.Parallel()

	calls := 0
	h := New(nil, nil, nil).Handler()(okHandler(&calls))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"10.0.0.1:80":    "10.0.0.1",
		"not-a-hostport": "not-a-hostport",
		"":               "unknown",
	}
	for addr, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		require.Equal(t, want, clientIP(r), addr)
	}
}
