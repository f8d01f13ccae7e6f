// Package highlight maps scored text segments onto the regions of a
// rendered document. The primary path searches for each segment's literal
// text, deduplicates by region identity across segments, and tags every
// region with a visual tier derived from match confidence. When the primary
// path fails, a keyword-only fallback highlights clause occurrences with a
// uniform tier.
package highlight
