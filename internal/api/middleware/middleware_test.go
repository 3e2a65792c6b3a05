package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID string
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Запрос без заголовка отклоняется
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rw.Code)

	// Запрос с заголовком проходит, ID попадает в контекст
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "client-42")
	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, req)

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "client-42", gotUserID)
}

func TestRequestID(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r.Context())
		require.True(t, ok)
		assert.NotEmpty(t, id)
		w.WriteHeader(http.StatusOK)
	}))

	// Сервер генерирует ID, если клиент его не прислал
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rw.Header().Get(HeaderRequestID))

	// Клиентский ID сохраняется
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, "req-123", rw.Header().Get(HeaderRequestID))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusOK, rw.Code)

	// Второй мгновенный запрос с того же IP превышает burst
	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusTooManyRequests, rw.Code)

	// Другой IP имеет собственный лимит
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, other)
	assert.Equal(t, http.StatusOK, rw.Code)
}
