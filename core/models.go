package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// KeyFromContent generates a deterministic cache key from text content using
// BLAKE2b-256 hashing. Identical content always produces the identical key.
func KeyFromContent(text string) string {
	h, _ := blake2b.New(32, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Clause is a titled unit of document text produced by external segmentation.
// Clauses are identified by their ordinal position in the document's clause
// list and are never mutated by the engine.
type Clause struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Intent classifies what a query is asking for.
type Intent string

const (
	IntentLocation       Intent = "location"
	IntentExplanation    Intent = "explanation"
	IntentResponsibility Intent = "responsibility"
	IntentTiming         Intent = "timing"
	IntentProcess        Intent = "process"
	IntentGeneral        Intent = "general"
)

// Confidence is a coarse bucket summarizing match quality for display.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// RiskLevel is a traffic-light classification of document risk language.
type RiskLevel string

const (
	RiskRed    RiskLevel = "red"
	RiskYellow RiskLevel = "yellow"
	RiskGreen  RiskLevel = "green"
)

// QueryAnalysis holds the extracted structure of a user query.
// It is created once per query and consumed read-only by ranking and
// segmentation.
//
// Keywords preserves token order and duplicates; ExpandedTerms and Synonyms
// are deduplicated sets. ExpandedTerms always contains every keyword.
type QueryAnalysis struct {
	OriginalQuery string   `json:"original_query"`
	Keywords      []string `json:"keywords"`
	Synonyms      []string `json:"synonyms"`
	ExpandedTerms []string `json:"expanded_terms"`
	Intent        Intent   `json:"intent"`
	LegalEntities []string `json:"legal_entities"`
}

// MatchResult is one clause that cleared the inclusion threshold for a query.
// Results are ephemeral and rebuilt per query; ordering by CombinedScore
// descending defines result rank.
type MatchResult struct {
	Text            string     `json:"text"`
	Title           string     `json:"title"`
	SimilarityScore float64    `json:"similarity_score"` // cosine similarity, [0,1]
	FuzzyScore      int        `json:"fuzzy_score"`      // partial-ratio score, [0,100]
	CombinedScore   float64    `json:"combined_score"`   // 0.7*similarity + 0.3*(fuzzy/100)
	Confidence      Confidence `json:"confidence"`
	MatchedKeywords []string   `json:"matched_keywords"`
	Suggestions     []string   `json:"suggestions"` // at most 3, in order
}

// Segment is a sentence-granularity fragment of a matched clause, scored
// independently for highlighting. Its lifetime is independent of the
// MatchResult it was derived from.
type Segment struct {
	Text            string     `json:"text"`
	Title           string     `json:"title"`
	Score           float64    `json:"score"`
	Confidence      Confidence `json:"confidence"`
	MatchedKeywords []string   `json:"matched_keywords"`
}

// Region is a page-bound bounding box identifying one literal text
// occurrence in a rendered document. Regions are used only for highlight
// deduplication inside a single pass and are not persisted.
type Region struct {
	Page int
	X0   float64
	Y0   float64
	X1   float64
	Y1   float64
}

// HighlightTier selects the visual treatment of a highlight.
type HighlightTier string

const (
	TierPrimary   HighlightTier = "primary"
	TierSecondary HighlightTier = "secondary"
	TierTertiary  HighlightTier = "tertiary"
)

// TierForConfidence maps a confidence bucket to its visual tier.
func TierForConfidence(c Confidence) HighlightTier {
	switch c {
	case ConfidenceHigh:
		return TierPrimary
	case ConfidenceMedium:
		return TierSecondary
	default:
		return TierTertiary
	}
}

// Highlight is one region to mark in a rendered document.
type Highlight struct {
	Region Region
	Tier   HighlightTier
	Text   string // the literal text the region was found for
}
