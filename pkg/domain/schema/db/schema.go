package db

import "context"

// SchemaInterface represents a database schema.
type SchemaInterface interface {
	// Upgrade upgrades the schema to the latest version.
	Upgrade(ctx context.Context) error

	// Version returns the current version of the schema.
	Version(ctx context.Context) (int, error)

	// Context returns a context which is closed when the schema in the
	// database falls behind the versions found in the repository
	// directory.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
