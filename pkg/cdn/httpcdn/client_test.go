package httpcdn_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"outreach/pkg/cdn/httpcdn"
	"outreach/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     http.Header{},
		}, nil
	}
}

func TestFetch_Success(t *testing.T) {
	c := httpcdn.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "cdn.example.com", r.URL.Host)

		return respond(http.StatusOK, "name,phone\n")(r)
	})}, 1024)

	b, err := c.Fetch(context.Background(), "https://cdn.example.com/list.csv")
	require.NoError(t, err)
	require.Equal(t, "name,phone\n", string(b))
}

func TestFetch_InvalidURL(t *testing.T) {
	c := httpcdn.New(&http.Client{Transport: respond(http.StatusOK, "")}, 0)

	for _, u := range []string{"", "ftp://cdn.example.com/x", "https:///nohost", "::"} {
		_, err := c.Fetch(context.Background(), u)
		require.ErrorIs(t, err, serrors.ErrBadRequest, u)
	}
}

func TestFetch_StatusMapping(t *testing.T) {
	cases := map[int]serrors.Kind{
		http.StatusNotFound:            serrors.ErrBadRequest,
		http.StatusGone:                serrors.ErrBadRequest,
		http.StatusTooManyRequests:     serrors.ErrRateLimited,
		http.StatusInternalServerError: serrors.ErrUpstream,
		http.StatusForbidden:           serrors.ErrUpstream,
	}
	for status, kind := range cases {
		c := httpcdn.New(&http.Client{Transport: respond(status, "nope")}, 0)
		_, err := c.Fetch(context.Background(), "https://cdn.example.com/list.csv")
		require.ErrorIs(t, err, kind, "status %d", status)
	}
}

func TestFetch_MissingFileIsNotANotFound(t *testing.T) {
	c := httpcdn.New(&http.Client{Transport: respond(http.StatusNotFound, "")}, 0)

	_, err := c.Fetch(context.Background(), "https://cdn.example.com/list.csv")
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, http.StatusBadRequest, serrors.HTTPStatus(err))

	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, "file unavailable on CDN", se.Message())
}

func TestFetch_TooLarge(t *testing.T) {
	c := httpcdn.New(&http.Client{Transport: respond(http.StatusOK, "0123456789")}, 5)

	_, err := c.Fetch(context.Background(), "https://cdn.example.com/list.csv")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestFetch_TransportError(t *testing.T) {
	c := httpcdn.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})}, 0)

	_, err := c.Fetch(context.Background(), "https://cdn.example.com/list.csv")
	require.ErrorIs(t, err, serrors.ErrUpstream)
}
