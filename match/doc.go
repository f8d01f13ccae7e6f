// Package match implements the hybrid matching engine: cache-backed
// embedding, fuzzy lexical scoring, clause ranking with confidence tiers and
// refinement suggestions, and the segmentation of ranked matches into
// highlightable sentence fragments.
//
// The Engine is constructed once and reused across concurrent queries. All
// mutating state lives in the embedding cache; ranking itself is a pure
// function of the query, the clause list, and the cache contents.
package match
