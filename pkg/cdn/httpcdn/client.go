// Package httpcdn provides a cdn.Fetcher over plain HTTPS downloads.
package httpcdn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"outreach/pkg/cdn"
	"outreach/pkg/serrors"
	"strings"
)

var _ cdn.Fetcher = (*Client)(nil)

// Client downloads files over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	maxBytes   int64
}

// New returns a Client. Files larger than maxBytes are rejected; a value
// <= 0 disables the limit.
func New(httpClient *http.Client, maxBytes int64) *Client {
	return &Client{httpClient: httpClient, maxBytes: maxBytes}
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid file URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return serrors.With(serrors.ErrBadRequest, "invalid file URL %q", rawURL)
	}

	return nil
}

// Fetch downloads rawURL. Missing files map to ErrBadRequest so a stale file
// URL never reads as a missing campaign. Throttling maps to ErrRateLimited
// and any other non-2xx answer to ErrUpstream.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "file download timed out")
		}

		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not download file")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, serrors.With(serrors.ErrBadRequest, "file unavailable on CDN")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "CDN rate limited the download")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, serrors.With(serrors.ErrUpstream, "download failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	body := io.Reader(resp.Body)
	if c.maxBytes > 0 {
		body = io.LimitReader(resp.Body, c.maxBytes+1)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not read file")
	}
	if c.maxBytes > 0 && int64(len(b)) > c.maxBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "file exceeds %d bytes", c.maxBytes)
	}

	return b, nil
}
