package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside of a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrNotConnected is returned by Ping on a handle without a connection pool.
	ErrNotConnected = errors.New("not connected")
	// ErrInvalidPatch is returned when a campaign merge patch is not a JSON object.
	ErrInvalidPatch = errors.New("patch must be a JSON object")
)
