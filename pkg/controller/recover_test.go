package controller_test

import (
	"net/http"
	"net/http/httptest"
	"outreach/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithRecover(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		controller.WithRecover(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
}

func TestWithRecover_AbortHandlerPropagates(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	require.Panics(t, func() {
		controller.WithRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
