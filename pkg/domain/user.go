package domain

import "github.com/google/uuid"

// UserID identifies the owner of campaigns. It is the subject of the
// bearer token issued by the identity provider.
type UserID uuid.UUID

// String returns the canonical UUID form.
func (u UserID) String() string { return uuid.UUID(u).String() }

func (u UserID) MarshalText() ([]byte, error) { return uuid.UUID(u).MarshalText() }

func (u *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(u).UnmarshalText(b) } //nolint: wrapcheck
