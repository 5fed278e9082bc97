package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveHTTP(service, method, route string, status int, duration time.Duration) {
	m.Called(service, method, route, status)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	var gotUserID int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(UserIDHeader, "17")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(17), gotUserID)

	for _, header := range []string{"", "abc", "0", "-3"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(UserIDHeader, header)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	given := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, given)
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, given, seen)
}

func TestRecover(t *testing.T) {
	h := Recover(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(1, 2, nopLogger{})
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	h := l.Middleware(okHandler())

	call := func(userID string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(UserIDHeader, userID)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("1"))
	assert.Equal(t, http.StatusNoContent, call("1"))
	assert.Equal(t, http.StatusTooManyRequests, call("1"))
	assert.Equal(t, http.StatusNoContent, call("2"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("1"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewRateLimiter(1, 1, nopLogger{})
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	now = now.Add(l.idleTTL + time.Minute)
	assert.True(t, l.allow("b"))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.clients, "a")
	assert.Contains(t, l.clients, "b")
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &mockMetrics{}
	m.On("ObserveHTTP", "svc", http.MethodGet, "/bookings/{bookingId}", http.StatusNoContent).Once()

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "svc"))
	r.Handle("/bookings/{bookingId}", okHandler()).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/42", nil))

	m.AssertExpectations(t)
}
