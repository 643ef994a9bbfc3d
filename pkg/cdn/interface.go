// Package cdn defines how files uploaded by users (contact sheets) are
// read back from the content delivery network that hosts them.
package cdn

import "context"

// Fetcher downloads a file by its public URL.
//
//go:generate mockgen -package mockcdn -source=interface.go -destination=mock/mockcdn.go *
type Fetcher interface {
	// Fetch returns the body of the file at rawURL.
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
