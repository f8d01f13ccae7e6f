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


package match

import (
	"context"
	"log/slog"
	"math"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/poiesic/clausemark/ai"
	"github.com/poiesic/clausemark/core"
	"github.com/poiesic/clausemark/query"
	"github.com/poiesic/clausemark/storage"
)

// Default engine parameters.
const (
	DefaultSimilarityThreshold = 0.3
	DefaultFuzzyThreshold      = 60
	DefaultMaxResults          = 5
	DefaultMaxSegments         = 10
)

// Engine combines semantic similarity with fuzzy lexical matching over
// clause lists. It is safe for concurrent use; the embedding cache is the
// only shared mutable state.
type Engine struct {
	embedder       ai.Embedder
	cache          storage.VectorCache
	analyzer       *query.Analyzer
	simThreshold   float64
	fuzzyThreshold int
	logger         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithAnalyzer sets a custom query analyzer.
func WithAnalyzer(analyzer *query.Analyzer) Option {
	return func(e *Engine) error {
		if analyzer == nil {
			analyzer = query.NewAnalyzer()
		}
		e.analyzer = analyzer
		return nil
	}
}

// WithSimilarityThreshold sets the minimum combined score for inclusion.
// Default is 0.3.
func WithSimilarityThreshold(threshold float64) Option {
	return func(e *Engine) error {
		e.simThreshold = threshold
		return nil
	}
}

// WithFuzzyThreshold sets the fuzzy score that qualifies a clause on
// literal overlap alone. Default is 60.
func WithFuzzyThreshold(threshold int) Option {
	return func(e *Engine) error {
		e.fuzzyThreshold = threshold
		return nil
	}
}

// NewEngine creates a matching engine backed by the given embedder and
// vector cache.
func NewEngine(embedder ai.Embedder, cache storage.VectorCache, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	e := &Engine{
		embedder:       embedder,
		cache:          cache,
		analyzer:       query.NewAnalyzer(),
		simThreshold:   DefaultSimilarityThreshold,
		fuzzyThreshold: DefaultFuzzyThreshold,
		logger:         slog.Default().With("component", "match-engine"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Analyzer returns the engine's query analyzer.
func (e *Engine) Analyzer() *query.Analyzer {
	return e.analyzer
}

// Embed returns the embedding vector for a single text, computing and
// caching it on first sight.
func (e *Engine) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, _, err := e.embedAll(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns embedding vectors for texts in input order. Only the
// subset missing from the cache reaches the underlying model.
func (e *Engine) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, _, err := e.embedAll(ctx, texts)
	return vectors, err
}

// embedAll resolves texts to vectors through the cache and reports how many
// were cache hits. Cache read failures degrade to misses; cache write
// failures are logged and ignored so a broken cache never blocks a query.
func (e *Engine) embedAll(ctx context.Context, texts []string) ([][]float32, int, error) {
	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = core.KeyFromContent(text)
	}

	vectors, found, err := e.cache.GetBatch(ctx, keys)
	if err != nil {
		e.logger.Warn("cache read failed, recomputing all embeddings", "err", err)
		vectors = make([][]float32, len(texts))
		found = make([]bool, len(texts))
	}

	var (
		missingTexts   []string
		missingIndices []int
	)
	for i := range texts {
		if !found[i] {
			missingTexts = append(missingTexts, texts[i])
			missingIndices = append(missingIndices, i)
		}
	}
	hits := len(texts) - len(missingTexts)

	if len(missingTexts) > 0 {
		computed, err := e.embedder.EmbedTexts(ctx, missingTexts)
		if err != nil {
			return nil, hits, err
		}
		if len(computed) != len(missingTexts) {
			return nil, hits, ErrEmbeddingMismatch
		}

		for i, vector := range computed {
			idx := missingIndices[i]
			vectors[idx] = vector
			if err := e.cache.Put(ctx, keys[idx], vector); err != nil {
				e.logger.Warn("cache write failed", "err", err)
			}
		}
	}

	return vectors, hits, nil
}

// Fuzzy returns the partial-ratio score between two strings, scaled 0-100.
// The shorter string is aligned against substrings of the longer one, so
// argument order does not materially matter. Empty input scores zero.
func Fuzzy(a, b string) int {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}
	return fuzzy.PartialRatio(strings.ToLower(a), strings.ToLower(b))
}

// cosineSimilarity computes the cosine similarity of two vectors, clamped
// to [0,1]. Mismatched lengths compare over the shorter prefix.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
