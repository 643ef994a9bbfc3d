// Package storage defines the persistence contracts of the outreach service.
// Implementations live in sub packages (postgres) and are consumed by the
// campaign and inbox services through these interfaces only.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every domain capability a storage handle offers.
type AllStorage interface {
	CampaignStorage
	InboxStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It must not be
// used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root, non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
