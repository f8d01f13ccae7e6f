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
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/clausemark/core"
	"github.com/poiesic/clausemark/lexicon"
)

// Scoring weights: 70% semantic similarity, 30% fuzzy lexical overlap.
const (
	semanticWeight = 0.7
	fuzzyWeight    = 0.3
)

// Rank scores every clause against the query and returns the clauses that
// clear the inclusion threshold, ordered by combined score descending,
// truncated to maxResults (DefaultMaxResults when maxResults <= 0).
//
// An empty clause list yields an empty result without error. Malformed
// clauses (empty text) are rejected before any scoring.
func (e *Engine) Rank(ctx context.Context, q string, clauses []core.Clause, maxResults int) ([]core.MatchResult, error) {
	return e.RankWithMonitor(ctx, q, clauses, maxResults, nil)
}

// RankWithMonitor ranks clauses with monitoring. The monitor receives
// callbacks at each stage of the ranking pass.
func (e *Engine) RankWithMonitor(ctx context.Context, q string, clauses []core.Clause, maxResults int, monitor Monitor) ([]core.MatchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	monitor.Start(q)

	if len(clauses) == 0 {
		monitor.Finish(nil)
		return []core.MatchResult{}, nil
	}
	if err := core.ValidateClauses(clauses); err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}

	analysis := e.analyzer.Analyze(q)
	monitor.AfterAnalysis(analysis)

	// Title and text are matched as one combined string.
	combined := make([]string, len(clauses))
	for i, clause := range clauses {
		combined[i] = clause.Title + " " + clause.Text
	}

	// One batch for query plus clauses; only cache misses hit the model.
	texts := append([]string{q}, combined...)
	vectors, hits, err := e.embedAll(ctx, texts)
	if err != nil {
		e.logger.Error("error generating embeddings for ranking", "err", err)
		return nil, err
	}
	monitor.AfterEmbedding(hits, len(texts))

	queryVector := vectors[0]
	clauseVectors := vectors[1:]

	results := make([]core.MatchResult, 0, len(clauses))
	for i, clause := range clauses {
		similarity := cosineSimilarity(queryVector, clauseVectors[i])

		// Best fuzzy score over the raw query and every expanded term.
		fuzzyScore := Fuzzy(q, combined[i])
		for _, term := range analysis.ExpandedTerms {
			if score := Fuzzy(term, combined[i]); score > fuzzyScore {
				fuzzyScore = score
			}
		}

		combinedScore := semanticWeight*similarity + fuzzyWeight*(float64(fuzzyScore)/100)
		monitor.ClauseScored(i, similarity, fuzzyScore, combinedScore)

		// Inclusion is an OR: a clause can qualify on literal overlap alone.
		if combinedScore < e.simThreshold && fuzzyScore < e.fuzzyThreshold {
			continue
		}

		confidence := determineConfidence(combinedScore, fuzzyScore)
		monitor.ClauseIncluded(i, confidence)

		results = append(results, core.MatchResult{
			Text:            clause.Text,
			Title:           clause.Title,
			SimilarityScore: similarity,
			FuzzyScore:      fuzzyScore,
			CombinedScore:   combinedScore,
			Confidence:      confidence,
			MatchedKeywords: matchedKeywords(analysis, clause.Text),
			Suggestions:     buildSuggestions(analysis),
		})
	}

	// Stable sort keeps ties in encounter order.
	slices.SortStableFunc(results, func(a, b core.MatchResult) int {
		if a.CombinedScore > b.CombinedScore {
			return -1
		}
		if a.CombinedScore < b.CombinedScore {
			return 1
		}
		return 0
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	monitor.Finish(results)
	return results, nil
}

// determineConfidence buckets a score pair into a display tier.
func determineConfidence(combinedScore float64, fuzzyScore int) core.Confidence {
	switch {
	case combinedScore >= 0.8 || fuzzyScore >= 90:
		return core.ConfidenceHigh
	case combinedScore >= 0.5 || fuzzyScore >= 70:
		return core.ConfidenceMedium
	default:
		return core.ConfidenceLow
	}
}

// matchedKeywords returns the query keywords and synonyms that literally
// occur in the clause text, case-insensitively, deduplicated in first-seen
// order.
func matchedKeywords(analysis core.QueryAnalysis, text string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)
	matched := []string{}

	check := func(term string) {
		if seen[term] {
			return
		}
		if strings.Contains(textLower, strings.ToLower(term)) {
			seen[term] = true
			matched = append(matched, term)
		}
	}

	for _, keyword := range analysis.Keywords {
		check(keyword)
	}
	for _, synonym := range analysis.Synonyms {
		check(synonym)
	}

	return matched
}

// buildSuggestions produces at most three query refinement hints: a
// specificity nudge for short queries, related thesaurus variations, and an
// intent-specific pointer.
func buildSuggestions(analysis core.QueryAnalysis) []string {
	var suggestions []string

	if len(analysis.Keywords) < 3 {
		suggestions = append(suggestions, "Try using more specific keywords")
	}

	keywordSet := make(map[string]bool, len(analysis.Keywords))
	for _, keyword := range analysis.Keywords {
		keywordSet[keyword] = true
	}

	concepts := lexicon.Concepts()
	slices.Sort(concepts)
	for _, concept := range concepts {
		variations := lexicon.Variations(concept)
		triggered := false
		for _, variation := range variations {
			if keywordSet[variation] {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}

		var others []string
		for _, variation := range variations {
			if !keywordSet[variation] {
				others = append(others, variation)
			}
			if len(others) == 3 {
				break
			}
		}
		if len(others) > 0 {
			suggestions = append(suggestions, "Also try: "+strings.Join(others, ", "))
		}
	}

	switch analysis.Intent {
	case core.IntentLocation:
		suggestions = append(suggestions, "Try searching for specific clause titles or section numbers")
	case core.IntentExplanation:
		suggestions = append(suggestions, "Try asking 'What does [specific term] mean?'")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
