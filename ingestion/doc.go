// Package ingestion prepares documents for querying: it splits raw document
// text into titled clauses via a text-generation model and prewarms the
// embedding cache over a worker pool so first queries do not pay the full
// embedding cost.
package ingestion
