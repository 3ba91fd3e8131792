// Package mirror implements the Local Mirror: a durable, synchronous
// snapshot store holding the client's best-known copies of whole
// collections. Each write replaces the full snapshot for a collection,
// so no partial-write semantics are needed.
package mirror

import "context"

// Collection keys under which snapshots are stored. The session identity
// shares the medium but is keyed separately.
const (
	CollectionUsers     = "users"
	CollectionReminders = "reminders"
	KeySession          = "session"
)

// Repository describes the Local Mirror contract: collection-keyed blobs,
// full replace on write. A read of a missing snapshot returns (nil, nil).
type Repository interface {
	// Read returns the stored snapshot for a collection, or nil when absent.
	Read(ctx context.Context, collection string) ([]byte, error)

	// Write replaces the whole snapshot for a collection.
	Write(ctx context.Context, collection string, data []byte) error

	// Delete removes a collection snapshot. Deleting an absent key is a no-op.
	Delete(ctx context.Context, collection string) error

	// Clear wipes every snapshot.
	Clear(ctx context.Context) error

	// InTx runs fn against a transaction-scoped view of the repository,
	// committing on success and rolling back on error. Writes spanning
	// several collections go through here so they land together.
	InTx(ctx context.Context, fn func(Repository) error) error
}
