package storage

import "context"

// VectorCache is a content-addressed store mapping text keys to embedding
// vectors. Entries are write-once per distinct key and never invalidated;
// keys are expected to come from core.KeyFromContent over the exact text.
// Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// Get retrieves the vector cached under key.
	// The second return value reports whether the key was present.
	Get(ctx context.Context, key string) ([]float32, bool, error)

	// GetBatch retrieves the vectors for multiple keys in one call.
	// The returned slices are positional: vectors[i] is nil exactly when
	// found[i] is false. len(vectors) == len(found) == len(keys).
	GetBatch(ctx context.Context, keys []string) (vectors [][]float32, found []bool, err error)

	// Put stores a vector under key. Storing under an existing key
	// overwrites it with an identical value and is harmless.
	Put(ctx context.Context, key string, vector []float32) error

	// Len reports the number of cached entries.
	Len(ctx context.Context) (int, error)

	// Close flushes the cache to durable storage and releases resources.
	Close() error
}
