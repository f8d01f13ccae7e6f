package badger

import "fmt"

// Key prefix for embedding cache entries. Keys are namespaced by the
// embedding model name so vectors from one model are never served for
// another.
const embeddingPrefix = "emb"

// makeEmbeddingKey generates a cache key for a content hash under a model
// namespace. Format: prefix:model:contentKey
func makeEmbeddingKey(model, contentKey string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", embeddingPrefix, model, contentKey))
}

// makeModelPrefix generates the iteration prefix for all entries of a model.
func makeModelPrefix(model string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", embeddingPrefix, model))
}
