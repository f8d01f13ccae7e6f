// Package query analyzes free-form natural-language queries: it extracts
// keywords, expands them through the lexicon's synonym and legal-thesaurus
// tables, classifies the query's intent, and pulls out legal entity
// mentions. Analysis never fails; degenerate input yields an empty analysis
// with general intent.
package query
