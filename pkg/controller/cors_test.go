package controller_test

import (
	"net/http"
	"net/http/httptest"
	"outreach/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestWithCORS_AllowedOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/inbox", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(next, "https://app.example.com").ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "https://app.example.com", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
	require.Equal(t, "X-Request-Id", res.Header.Get("Access-Control-Expose-Headers"))
}

func TestWithCORS_UnknownOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/inbox", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(next, "https://app.example.com").ServeHTTP(rec, req)

	require.True(t, called)
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Methods"))
}
