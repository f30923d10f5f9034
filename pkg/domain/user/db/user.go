package db

import (
	"context"

	"github.com/lumendata/govcat/pkg/domain"
)

type UserInterface interface {
	// Upsert records a sighting of an identity. The row is keyed by
	// email; name and source are overwritten and lastSeenAt is set to
	// now on every call.
	Upsert(ctx context.Context, identity domain.Identity) error

	// List returns all known users, most recently seen first.
	List(ctx context.Context) ([]domain.User, error)
}
