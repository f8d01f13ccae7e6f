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


package query

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/poiesic/clausemark/core"
	"github.com/poiesic/clausemark/lexicon"
)

// nonWord matches every character stripped during query normalization.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// Analyzer extracts the searchable structure of a user query.
// An Analyzer is stateless apart from its logger and safe for concurrent use.
type Analyzer struct {
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
	}
}

// NewAnalyzer creates a new query analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger: slog.Default().With("component", "query-analyzer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze extracts keywords, synonyms, expanded terms, intent, and legal
// entities from a query. It never fails: empty or punctuation-only input
// yields empty keyword sets and general intent.
//
// Keywords preserve token order and duplicates. Synonyms and ExpandedTerms
// are deduplicated, and ExpandedTerms always contains every keyword.
func (a *Analyzer) Analyze(query string) core.QueryAnalysis {
	clean := nonWord.ReplaceAllString(strings.ToLower(query), " ")
	tokens := strings.Fields(clean)

	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) > 2 {
			keywords = append(keywords, token)
		}
	}

	synonyms := collectSynonyms(keywords)
	expanded := expandTerms(keywords)
	intent := classifyIntent(query)
	entities := extractLegalEntities(query)

	a.logger.Debug("analyzed query",
		"keywords", len(keywords),
		"synonyms", len(synonyms),
		"expanded", len(expanded),
		"intent", intent)

	return core.QueryAnalysis{
		OriginalQuery: query,
		Keywords:      keywords,
		Synonyms:      synonyms,
		ExpandedTerms: expanded,
		Intent:        intent,
		LegalEntities: entities,
	}
}

// collectSynonyms gathers lexicon synonyms for each keyword, deduplicated
// in first-seen order.
func collectSynonyms(keywords []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, keyword := range keywords {
		for _, syn := range lexicon.Synonyms(keyword) {
			if seen[syn] {
				continue
			}
			seen[syn] = true
			out = append(out, syn)
		}
	}
	return out
}

// expandTerms unions the keywords with the variation lists of every legal
// concept one of whose variations occurs as a substring of a keyword. The
// result is deduplicated; keywords are kept in their original positions.
func expandTerms(keywords []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(keywords))
	add := func(term string) {
		if seen[term] {
			return
		}
		seen[term] = true
		out = append(out, term)
	}

	for _, keyword := range keywords {
		add(keyword)
	}

	// Sorted concept order keeps the expansion deterministic.
	concepts := lexicon.Concepts()
	slices.Sort(concepts)

	for _, keyword := range keywords {
		for _, concept := range concepts {
			variations := lexicon.Variations(concept)
			triggered := false
			for _, variation := range variations {
				if strings.Contains(keyword, variation) {
					triggered = true
					break
				}
			}
			if triggered {
				for _, variation := range variations {
					add(variation)
				}
			}
		}
	}

	return out
}

// Intent trigger buckets, evaluated in fixed priority order: the first
// bucket with a trigger word present in the query wins.
var intentBuckets = []struct {
	intent   core.Intent
	triggers []string
}{
	{core.IntentLocation, []string{"where", "find", "locate", "show"}},
	{core.IntentExplanation, []string{"what", "explain", "mean", "definition"}},
	{core.IntentResponsibility, []string{"who", "responsible", "liable", "accountable"}},
	{core.IntentTiming, []string{"when", "time", "deadline", "expire"}},
	{core.IntentProcess, []string{"how", "process", "procedure", "method"}},
}

// classifyIntent determines what the query is asking for.
func classifyIntent(query string) core.Intent {
	lower := strings.ToLower(query)
	for _, bucket := range intentBuckets {
		for _, trigger := range bucket.triggers {
			if strings.Contains(lower, trigger) {
				return bucket.intent
			}
		}
	}
	return core.IntentGeneral
}
