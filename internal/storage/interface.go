package storage

import "context"

// Gateway is the durable key-value blob store the record store mirrors itself into.
// Blobs are opaque to the gateway; one blob is kept per namespace.
type Gateway interface {
	// Load returns the blob saved under namespace, or model.ErrSnapshotNotFound
	Load(ctx context.Context, namespace string) ([]byte, error)
	// Save replaces the blob under namespace
	Save(ctx context.Context, namespace string, blob []byte) error
	// Delete removes the blob under namespace. Deleting a missing namespace is not an error.
	Delete(ctx context.Context, namespace string) error
	// Close releases any connection held by the gateway
	Close() error
}
