package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStorage is a read-only view over the place model artifacts are published to.
type ObjectStorage interface {
	// Download opens the object stored under key. Callers close the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Describe returns a human-readable location for key, used in logs.
	Describe(key string) string
}
