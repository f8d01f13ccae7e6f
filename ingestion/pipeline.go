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


package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/clausemark/core"
	"github.com/poiesic/clausemark/match"
)

// Pipeline prewarms the embedding cache for a document's clauses over a
// worker pool, so interactive queries start from a warm cache.
type Pipeline struct {
	engine *match.Engine
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a prewarming pipeline over the given engine.
func NewPipeline(engine *match.Engine, opts ...Option) (*Pipeline, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		engine: engine,
		pool:   pool,
		logger: slog.Default().With("component", "ingestion-pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Prewarm embeds every clause through the engine's cache, fanned out over
// the worker pool, and blocks until all clauses are processed. Individual
// embedding failures are logged, not fatal; the number of clauses embedded
// successfully is returned.
func (p *Pipeline) Prewarm(ctx context.Context, clauses []core.Clause) (int, error) {
	if err := core.ValidateClauses(clauses); err != nil {
		return 0, err
	}

	var (
		wg       sync.WaitGroup
		warmed   atomic.Int64
		failures atomic.Int64
	)

	for _, clause := range clauses {
		text := clause.Title + " " + clause.Text
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()
			if _, err := p.engine.Embed(ctx, text); err != nil {
				failures.Add(1)
				p.logger.Error("error prewarming clause embedding", "err", err)
				return
			}
			warmed.Add(1)
		}); err != nil {
			wg.Done()
			return int(warmed.Load()), err
		}
	}

	wg.Wait()

	p.logger.Info("cache prewarm complete",
		"clauses", len(clauses),
		"warmed", warmed.Load(),
		"failures", failures.Load())
	return int(warmed.Load()), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
