package query

import (
	"regexp"
	"strings"
)

// Legal entity mention patterns, matched case-insensitively on word
// boundaries over the raw query text.
var entityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:court|tribunal|judge|magistrate)\b`),
	regexp.MustCompile(`(?i)\b(?:plaintiff|defendant|respondent|appellant)\b`),
	regexp.MustCompile(`(?i)\b(?:contract|agreement|lease|deed|will)\b`),
	regexp.MustCompile(`(?i)\b(?:clause|section|paragraph|article)\b`),
	regexp.MustCompile(`(?i)\b(?:party|parties|signatory|signatories)\b`),
}

// extractLegalEntities returns the deduplicated union of all entity pattern
// matches in the query, lowercased, in first-seen order.
func extractLegalEntities(query string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range entityPatterns {
		for _, match := range pattern.FindAllString(query, -1) {
			entity := strings.ToLower(match)
			if seen[entity] {
				continue
			}
			seen[entity] = true
			out = append(out, entity)
		}
	}
	return out
}
