package ports

import (
	"context"

	"github.com/bft-labs/stringsaver/internal/domain"
)

// Gateway is a thin facade over a document store client.
// Every failure is returned as a *domain.StorageError.
// Implementations do not enforce call order; operations issued outside a
// connected session fail with a StorageError.
type Gateway interface {
	// Connect establishes a session with the store.
	Connect(ctx context.Context) error

	// InsertOne writes one record into the configured collection.
	// The record is stored as given, without schema validation.
	InsertOne(ctx context.Context, record any) error

	// FindOne returns the first document matching filter.
	// A nil sort keeps the store's natural order.
	// Returns a nil Document and nil error when nothing matches.
	FindOne(ctx context.Context, filter domain.Filter, sort *domain.Sort) (domain.Document, error)

	// Close releases the session.
	Close(ctx context.Context) error
}
