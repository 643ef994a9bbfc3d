package gemini_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"outreach/pkg/llm/gemini"
	"outreach/pkg/serrors"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *gemini.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := gemini.New(context.Background(), gemini.Options{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	return c
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := gemini.New(context.Background(), gemini.Options{})
	require.Error(t, err)
}

func TestGenerate_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "models/"+gemini.DefaultModel+":generateContent"), r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		require.Contains(t, string(b), "write me a description")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"  Ride into spring.  "}]}}]}`)
	})

	text, err := c.Generate(context.Background(), "write me a description")
	require.NoError(t, err)
	require.Equal(t, "Ride into spring.", text)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := c.Generate(context.Background(), "x")
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestGenerate_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"bad prompt","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := c.Generate(context.Background(), "x")
	require.ErrorIs(t, err, serrors.ErrUpstream)
}
