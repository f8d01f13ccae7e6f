package match

import (
	"context"
	"testing"

	"github.com/poiesic/clausemark/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agreementClauses = []core.Clause{
	{
		Title: "Child Custody",
		Text:  "The mother shall have primary physical custody of the minor children. The father shall have visitation rights every other weekend.",
	},
	{
		Title: "Payment Terms",
		Text:  "All payments shall be made within 30 days of the invoice date. Late payments shall incur a 1.5% monthly interest charge.",
	},
	{
		Title: "Termination",
		Text:  "Either party may terminate this agreement with 60 days written notice. Early termination incurs a penalty fee.",
	},
	{
		Title: "Confidentiality",
		Text:  "Both parties agree to keep the terms of this agreement confidential and shall not disclose proprietary information.",
	},
}

func TestRank_CustodyQuery(t *testing.T) {
	engine, _ := newTestEngine(t)

	results, err := engine.Rank(context.Background(), "Who has custody of the children?", agreementClauses, 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	top := results[0]
	assert.Equal(t, "Child Custody", top.Title)
	assert.Contains(t, []core.Confidence{core.ConfidenceHigh, core.ConfidenceMedium}, top.Confidence)
	assert.Contains(t, top.MatchedKeywords, "custody")
}

func TestRank_UnrelatedQuery(t *testing.T) {
	engine, _ := newTestEngine(t)

	leaseClauses := []core.Clause{
		{Title: "Parking", Text: "Tenant may park one vehicle in the assigned space. Guest parking requires a permit."},
		{Title: "Pets", Text: "No pets are allowed on the premises without prior written consent."},
	}

	results, err := engine.Rank(context.Background(), "intellectual property ownership", leaseClauses, 5)
	require.NoError(t, err)

	// Nothing in the lease covers IP: anything that sneaks past the
	// threshold must be flagged low confidence.
	for _, result := range results {
		assert.Equal(t, core.ConfidenceLow, result.Confidence)
	}
}

func TestRank_EmptyClauseList(t *testing.T) {
	engine, _ := newTestEngine(t)

	results, err := engine.Rank(context.Background(), "any query", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRank_InvalidClause(t *testing.T) {
	engine, _ := newTestEngine(t)

	clauses := []core.Clause{{Title: "Valid", Text: "Some text."}, {Title: "Broken", Text: ""}}
	_, err := engine.Rank(context.Background(), "query", clauses, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyClauseText)
}

func TestRank_Deterministic(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	first, err := engine.Rank(ctx, "When can the agreement be terminated?", agreementClauses, 5)
	require.NoError(t, err)
	second, err := engine.Rank(ctx, "When can the agreement be terminated?", agreementClauses, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_ScoreRanges(t *testing.T) {
	engine, err := NewEngine(mustMockEmbedder(t), mustMemoryCache(t),
		WithSimilarityThreshold(0.0),
		WithFuzzyThreshold(0),
	)
	require.NoError(t, err)

	results, err := engine.Rank(context.Background(), "payment obligations", agreementClauses, 10)
	require.NoError(t, err)
	require.Len(t, results, len(agreementClauses))

	for _, result := range results {
		assert.GreaterOrEqual(t, result.SimilarityScore, 0.0)
		assert.LessOrEqual(t, result.SimilarityScore, 1.0)
		assert.GreaterOrEqual(t, result.FuzzyScore, 0)
		assert.LessOrEqual(t, result.FuzzyScore, 100)
		assert.GreaterOrEqual(t, result.CombinedScore, 0.0)
		assert.LessOrEqual(t, result.CombinedScore, 1.0)
	}
}

func TestRank_SortedAndTruncated(t *testing.T) {
	engine, err := NewEngine(mustMockEmbedder(t), mustMemoryCache(t),
		WithSimilarityThreshold(0.0),
		WithFuzzyThreshold(0),
	)
	require.NoError(t, err)

	results, err := engine.Rank(context.Background(), "termination notice", agreementClauses, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.GreaterOrEqual(t, results[0].CombinedScore, results[1].CombinedScore)
}

func TestRank_InclusionMonotonicity(t *testing.T) {
	ctx := context.Background()
	query := "confidential information disclosure"

	strict, err := NewEngine(mustMockEmbedder(t), mustMemoryCache(t))
	require.NoError(t, err)
	relaxed, err := NewEngine(mustMockEmbedder(t), mustMemoryCache(t),
		WithSimilarityThreshold(0.0),
		WithFuzzyThreshold(0),
	)
	require.NoError(t, err)

	strictResults, err := strict.Rank(ctx, query, agreementClauses, 10)
	require.NoError(t, err)
	relaxedResults, err := relaxed.Rank(ctx, query, agreementClauses, 10)
	require.NoError(t, err)

	// Lowering thresholds never evicts a previously included clause.
	relaxedTitles := make(map[string]bool)
	for _, result := range relaxedResults {
		relaxedTitles[result.Title] = true
	}
	for _, result := range strictResults {
		assert.True(t, relaxedTitles[result.Title], "clause %q lost after relaxing thresholds", result.Title)
	}
}

func TestDetermineConfidence(t *testing.T) {
	tests := []struct {
		name     string
		combined float64
		fuzzy    int
		want     core.Confidence
	}{
		{"high by combined score", 0.85, 50, core.ConfidenceHigh},
		{"high by fuzzy score", 0.2, 95, core.ConfidenceHigh},
		{"high at combined boundary", 0.8, 0, core.ConfidenceHigh},
		{"high at fuzzy boundary", 0.0, 90, core.ConfidenceHigh},
		{"medium by combined score", 0.6, 50, core.ConfidenceMedium},
		{"medium by fuzzy score", 0.3, 75, core.ConfidenceMedium},
		{"medium at combined boundary", 0.5, 0, core.ConfidenceMedium},
		{"low", 0.4, 60, core.ConfidenceLow},
		{"low at zero", 0.0, 0, core.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineConfidence(tt.combined, tt.fuzzy))
		})
	}
}

func TestBuildSuggestions(t *testing.T) {
	engine, _ := newTestEngine(t)

	t.Run("short query nudges specificity", func(t *testing.T) {
		analysis := engine.Analyzer().Analyze("custody")
		suggestions := buildSuggestions(analysis)
		assert.Contains(t, suggestions, "Try using more specific keywords")
	})

	t.Run("concept variations suggested", func(t *testing.T) {
		analysis := engine.Analyzer().Analyze("who has custody of the children")
		suggestions := buildSuggestions(analysis)

		found := false
		for _, s := range suggestions {
			if len(s) > 9 && s[:9] == "Also try:" {
				found = true
			}
		}
		assert.True(t, found, "expected a thesaurus suggestion, got %v", suggestions)
	})

	t.Run("never more than three", func(t *testing.T) {
		analysis := engine.Analyzer().Analyze("where is the custody and payment termination clause")
		assert.LessOrEqual(t, len(buildSuggestions(analysis)), 3)
	})
}

func TestMatchedKeywords(t *testing.T) {
	engine, _ := newTestEngine(t)
	analysis := engine.Analyzer().Analyze("Who has custody of the children?")

	matched := matchedKeywords(analysis, agreementClauses[0].Text)
	assert.Contains(t, matched, "custody")
	assert.Contains(t, matched, "children")
	assert.NotContains(t, matched, "payment")
}
