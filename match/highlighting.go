package match

import (
	"context"

	"github.com/poiesic/clausemark/core"
)

// QuerySummary is the client-facing subset of a query analysis.
type QuerySummary struct {
	OriginalQuery string      `json:"original_query"`
	Keywords      []string    `json:"keywords"`
	Intent        core.Intent `json:"intent"`
}

// Highlighting bundles everything a caller needs to present a query's
// results: ranked matches, scored segments, and the query summary.
type Highlighting struct {
	Matches  []core.MatchResult `json:"matches"`
	Segments []core.Segment     `json:"segments"`
	Query    QuerySummary       `json:"query_analysis"`
}

// Highlighting runs the full pipeline for one query: rank, segment, and
// summarize the analysis.
func (e *Engine) Highlighting(ctx context.Context, q string, clauses []core.Clause, maxResults, maxSegments int) (*Highlighting, error) {
	matches, err := e.Rank(ctx, q, clauses, maxResults)
	if err != nil {
		return nil, err
	}

	analysis := e.analyzer.Analyze(q)

	return &Highlighting{
		Matches:  matches,
		Segments: e.Segment(q, matches, maxSegments),
		Query: QuerySummary{
			OriginalQuery: analysis.OriginalQuery,
			Keywords:      analysis.Keywords,
			Intent:        analysis.Intent,
		},
	}, nil
}
