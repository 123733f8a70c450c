package generic

//go:generate mockgen -source=database_interface.go -package=mocks -destination=../../../internal/mocks/database_mock.go

import (
	"context"

	"mongosync/pkg/document"
)

// Database defines the interface for the document database a snapshot is synced with
type Database interface {
	// ListCollectionNames returns every collection in the database's enumeration order
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Collection returns a handle for the named collection
	Collection(name string) Collection

	// Close cleans up the database resources
	Close() error
}

// Collection defines the operations run against a single collection
type Collection interface {
	// Find streams every document of the collection, in the order the database
	// returns them, to fn. An error from fn stops the stream and is returned.
	Find(ctx context.Context, fn func(document.Document) error) error

	// InsertMany inserts docs as one batch and returns the number inserted
	InsertMany(ctx context.Context, docs []document.Document) (int, error)
}
