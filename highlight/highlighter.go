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


package highlight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/clausemark/ai"
	"github.com/poiesic/clausemark/core"
	"github.com/poiesic/clausemark/match"
	"github.com/poiesic/clausemark/query"
)

// Fragment length bounds for the retry and fallback searches.
const (
	resplitThreshold  = 20 // primary-path segments longer than this are re-split on zero hits
	fragmentMinLength = 10 // re-split fragments at or under this length are dropped
	sentenceMinLength = 5  // fallback sentences at or under this length are skipped
)

// DocumentSearcher locates literal text occurrences in a rendered document.
// Implementations are treated as unreliable collaborators: errors trigger
// fallback behavior, never a crash.
type DocumentSearcher interface {
	// SearchText returns the bounding regions of every occurrence of text
	// in the document, or an empty slice when the text does not occur.
	SearchText(ctx context.Context, text string) ([]core.Region, error)
}

// Highlighter turns segments or keywords into deduplicated document
// highlights. It is safe for concurrent use.
type Highlighter struct {
	searcher  DocumentSearcher
	generator ai.TextGenerator
	analyzer  *query.Analyzer
	logger    *slog.Logger
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Highlighter) {
		if logger == nil {
			logger = slog.Default()
		}
		h.logger = logger
	}
}

// WithGenerator sets the text-generation collaborator used to derive
// highlight keywords in the fallback path. Without one the analyzer's
// keyword list is used directly.
func WithGenerator(generator ai.TextGenerator) Option {
	return func(h *Highlighter) {
		h.generator = generator
	}
}

// WithAnalyzer sets a custom query analyzer.
func WithAnalyzer(analyzer *query.Analyzer) Option {
	return func(h *Highlighter) {
		if analyzer == nil {
			analyzer = query.NewAnalyzer()
		}
		h.analyzer = analyzer
	}
}

// NewHighlighter creates a highlighter over the given document searcher.
func NewHighlighter(searcher DocumentSearcher, opts ...Option) (*Highlighter, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	h := &Highlighter{
		searcher: searcher,
		analyzer: query.NewAnalyzer(),
		logger:   slog.Default().With("component", "highlighter"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// HighlightSegments runs the primary highlighting pass: each segment's text
// is searched literally, in the order given, and every newly seen region is
// emitted with the tier of the segment that claimed it first. A region
// already claimed by an earlier segment is never re-marked. Segments longer
// than 20 characters that yield no occurrence are re-split into sentence
// fragments and retried through the same deduplication.
//
// A search failure aborts the pass with ErrSearchFailed so the caller can
// switch to the keyword fallback.
func (h *Highlighter) HighlightSegments(ctx context.Context, segments []core.Segment) ([]core.Highlight, error) {
	seen := make(map[core.Region]bool)
	var highlights []core.Highlight

	for _, segment := range segments {
		tier := core.TierForConfidence(segment.Confidence)

		added, err := h.searchAndClaim(ctx, segment.Text, tier, seen, &highlights)
		if err != nil {
			return nil, err
		}
		if added > 0 || len(segment.Text) <= resplitThreshold {
			continue
		}

		// Zero hits on a long segment: the renderer likely broke the text
		// across lines, so retry sentence by sentence.
		for _, fragment := range match.SplitSentences(segment.Text, fragmentMinLength) {
			if _, err := h.searchAndClaim(ctx, fragment, tier, seen, &highlights); err != nil {
				return nil, err
			}
		}
	}

	h.logger.Debug("primary highlighting pass complete",
		"segments", len(segments),
		"regions", len(highlights))
	return highlights, nil
}

// HighlightKeywords runs the keyword fallback pass: every clause whose
// title or text contains one of the keywords is searched for in full, then
// sentence by sentence when the full text yields nothing. All regions get
// the primary tier; the pass has no confidence information to grade with.
// Search failures are logged and skipped.
func (h *Highlighter) HighlightKeywords(ctx context.Context, keywords []string, clauses []core.Clause) []core.Highlight {
	seen := make(map[core.Region]bool)
	var highlights []core.Highlight

	for _, clause := range clauses {
		if !clauseMentions(clause, keywords) {
			continue
		}

		added, err := h.searchAndClaim(ctx, clause.Text, core.TierPrimary, seen, &highlights)
		if err != nil {
			h.logger.Warn("keyword highlight search failed", "title", clause.Title, "err", err)
			continue
		}
		if added > 0 {
			continue
		}

		for _, sentence := range match.SplitSentences(clause.Text, sentenceMinLength) {
			if _, err := h.searchAndClaim(ctx, sentence, core.TierPrimary, seen, &highlights); err != nil {
				h.logger.Warn("keyword highlight search failed", "title", clause.Title, "err", err)
				break
			}
		}
	}

	return highlights
}

// Highlight is the two-stage pipeline: the segment pass first, and on
// failure or an empty result the keyword fallback. Fallback keywords come
// from the text-generation collaborator when one is configured, degrading
// to the analyzer's keyword list when generation fails or is unavailable.
func (h *Highlighter) Highlight(ctx context.Context, q string, segments []core.Segment, clauses []core.Clause) []core.Highlight {
	if len(segments) > 0 {
		highlights, err := h.HighlightSegments(ctx, segments)
		if err == nil && len(highlights) > 0 {
			return highlights
		}
		if err != nil {
			h.logger.Warn("segment highlighting failed, falling back to keywords", "err", err)
		}
	}

	keywords := h.fallbackKeywords(ctx, q)
	if len(keywords) == 0 {
		return []core.Highlight{}
	}
	return h.HighlightKeywords(ctx, keywords, clauses)
}

// searchAndClaim searches for text and appends every previously unseen
// region, returning how many were added.
func (h *Highlighter) searchAndClaim(ctx context.Context, text string, tier core.HighlightTier, seen map[core.Region]bool, highlights *[]core.Highlight) (int, error) {
	regions, err := h.searcher.SearchText(ctx, text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	added := 0
	for _, region := range regions {
		if seen[region] {
			continue
		}
		seen[region] = true
		*highlights = append(*highlights, core.Highlight{
			Region: region,
			Tier:   tier,
			Text:   text,
		})
		added++
	}
	return added, nil
}

// fallbackKeywords derives literal keywords for the fallback pass.
func (h *Highlighter) fallbackKeywords(ctx context.Context, q string) []string {
	if h.generator != nil {
		keywords, err := ExtractKeywords(ctx, h.generator, q)
		if err == nil && len(keywords) > 0 {
			return keywords
		}
		if err != nil {
			h.logger.Warn("keyword extraction failed, using analyzer keywords", "err", err)
		}
	}
	return h.analyzer.Analyze(q).Keywords
}

// clauseMentions reports whether any keyword occurs in the clause title or
// text, case-insensitively.
func clauseMentions(clause core.Clause, keywords []string) bool {
	title := strings.ToLower(clause.Title)
	text := strings.ToLower(clause.Text)
	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		if lower == "" {
			continue
		}
		if strings.Contains(title, lower) || strings.Contains(text, lower) {
			return true
		}
	}
	return false
}
