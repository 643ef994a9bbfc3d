package controller_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"outreach/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	ok := pingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		require.True(t, hasDeadline)

		return nil
	})
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	rec := httptest.NewRecorder()
	controller.HealthHandler(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.HealthPath, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	controller.HealthHandler(ok, down).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.HealthPath, nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "UNAVAILABLE", gjson.GetBytes(rec.Body.Bytes(), "code").String())
}
