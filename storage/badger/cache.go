// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/clausemark/storage"
)

// VectorCache implements storage.VectorCache on a BadgerDB backend.
// Badger transactions guarantee that readers only ever observe
// fully-written values; concurrent misses for the same key may both compute
// upstream, and the duplicate write is harmless because the value is
// identical.
type VectorCache struct {
	backend *Backend
	model   string
	logger  *slog.Logger
}

var _ storage.VectorCache = (*VectorCache)(nil)

// OpenCache opens a persistent embedding cache at filePath, namespaced by
// the embedding model name. If the on-disk database cannot be opened (a
// missing or corrupt cache artifact), the cache degrades to an empty
// in-memory store with a logged warning: a cold start, never a failure.
func OpenCache(filePath, model string) (storage.VectorCache, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		slog.Warn("could not open embedding cache, starting empty in-memory",
			"path", filePath, "err", err)
		backend, err = OpenBackend("", true)
		if err != nil {
			return nil, err
		}
	}
	return newVectorCache(backend, model), nil
}

// NewVectorCache creates a cache on an already-open backend.
func NewVectorCache(backend *Backend, model string) (storage.VectorCache, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return newVectorCache(backend, model), nil
}

func newVectorCache(backend *Backend, model string) *VectorCache {
	return &VectorCache{
		backend: backend,
		model:   model,
		logger:  slog.Default().With("component", "vector-cache", "model", model),
	}
}

// Get retrieves the vector cached under key. An unreadable (corrupt) entry
// is reported as a miss.
func (c *VectorCache) Get(ctx context.Context, key string) ([]float32, bool, error) {
	if key == "" {
		return nil, false, storage.ErrEmptyKey
	}
	if c.backend.IsClosed() {
		return nil, false, storage.ErrCacheClosed
	}

	var vector []float32
	found := false

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(c.model, key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			v, err := storage.UnmarshalVector(val)
			if err != nil {
				// Treat a corrupt entry as a miss; it will be recomputed.
				c.logger.Warn("corrupt cache entry, treating as miss", "err", err)
				return nil
			}
			vector = v
			found = true
			return nil
		})
	}, false)
	if err != nil {
		return nil, false, err
	}

	return vector, found, nil
}

// GetBatch retrieves the vectors for multiple keys in one read transaction.
func (c *VectorCache) GetBatch(ctx context.Context, keys []string) ([][]float32, []bool, error) {
	if c.backend.IsClosed() {
		return nil, nil, storage.ErrCacheClosed
	}

	vectors := make([][]float32, len(keys))
	found := make([]bool, len(keys))

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		for i, key := range keys {
			if key == "" {
				return storage.ErrEmptyKey
			}
			item, err := tx.Get(makeEmbeddingKey(c.model, key))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				v, err := storage.UnmarshalVector(val)
				if err != nil {
					c.logger.Warn("corrupt cache entry, treating as miss", "err", err)
					return nil
				}
				vectors[i] = v
				found[i] = true
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, nil, err
	}

	return vectors, found, nil
}

// Put stores a vector under key.
func (c *VectorCache) Put(ctx context.Context, key string, vector []float32) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if c.backend.IsClosed() {
		return storage.ErrCacheClosed
	}

	data := storage.MarshalVector(vector)
	return c.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(makeEmbeddingKey(c.model, key), data)
	}, true)
}

// Len reports the number of entries cached for this model.
func (c *VectorCache) Len(ctx context.Context) (int, error) {
	if c.backend.IsClosed() {
		return 0, storage.ErrCacheClosed
	}

	count := 0
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeModelPrefix(c.model)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close flushes and closes the underlying backend.
func (c *VectorCache) Close() error {
	if c.backend.IsClosed() {
		return nil
	}
	return c.backend.Close()
}
