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


package clausemark

import (
	"log/slog"

	"github.com/poiesic/clausemark/ai"
	"github.com/poiesic/clausemark/ai/openai"
	"github.com/poiesic/clausemark/highlight"
	"github.com/poiesic/clausemark/ingestion"
	"github.com/poiesic/clausemark/match"
	"github.com/poiesic/clausemark/storage"
	"github.com/poiesic/clausemark/storage/badger"
)

// Matcher owns the embedding cache, the AI provider, and the matching
// engine for one process. Create it once and reuse it across queries.
type Matcher struct {
	cache    storage.VectorCache
	provider ai.Provider
	engine   *match.Engine
	logger   *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*matcherOptions)

type matcherOptions struct {
	aiConfig   *ai.Config
	engineOpts []match.Option
}

// WithAIConfig sets the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) MatcherOption {
	return func(o *matcherOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEngineOptions passes options through to the matching engine.
func WithEngineOptions(opts ...match.Option) MatcherOption {
	return func(o *matcherOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// NewMatcher opens the embedding cache at cachePath and wires up the AI
// provider and matching engine. Provider or engine construction failure is
// fatal; a broken cache file is not, the cache degrades to memory-only.
func NewMatcher(cachePath string, opts ...MatcherOption) (*Matcher, error) {
	options := &matcherOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		return nil, err
	}

	cache, err := badger.OpenCache(cachePath, options.aiConfig.EmbeddingModel)
	if err != nil {
		provider.Close()
		return nil, err
	}

	engine, err := match.NewEngine(provider.Embedder(), cache, options.engineOpts...)
	if err != nil {
		cache.Close()
		provider.Close()
		return nil, err
	}

	return &Matcher{
		cache:    cache,
		provider: provider,
		engine:   engine,
		logger:   slog.Default(),
	}, nil
}

// Close releases the provider and the embedding cache.
func (m *Matcher) Close() error {
	if err := m.provider.Close(); err != nil {
		m.logger.Error("error closing AI provider", "err", err)
	}

	if err := m.cache.Close(); err != nil {
		m.logger.Error("error closing embedding cache", "err", err)
		return err
	}
	return nil
}

// Engine returns the matching engine.
func (m *Matcher) Engine() *match.Engine {
	return m.engine
}

// Cache returns the embedding cache.
func (m *Matcher) Cache() storage.VectorCache {
	return m.cache
}

// Provider returns the AI provider.
func (m *Matcher) Provider() ai.Provider {
	return m.provider
}

// NewIngestionPipeline creates a cache prewarming pipeline over the
// matcher's engine.
func (m *Matcher) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(m.engine, opts...)
}

// NewHighlighter creates a document highlighter that shares the matcher's
// text generator for keyword fallback.
func (m *Matcher) NewHighlighter(searcher highlight.DocumentSearcher, opts ...highlight.Option) (*highlight.Highlighter, error) {
	opts = append([]highlight.Option{
		highlight.WithGenerator(m.provider.Generator()),
		highlight.WithAnalyzer(m.engine.Analyzer()),
	}, opts...)
	return highlight.NewHighlighter(searcher, opts...)
}
