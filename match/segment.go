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
	"regexp"
	"slices"
	"strings"

	"github.com/poiesic/clausemark/core"
)

// Segmentation parameters.
const (
	minFragmentLength   = 10  // fragments at or under this trimmed length are dropped
	shortSentenceBound  = 20  // below this a length penalty applies
	longSentenceBound   = 200 // above this a length penalty applies
	lengthPenaltyFactor = 0.8
	minSegmentScore     = 0.3
)

// sentenceSplit matches runs of sentence-terminal punctuation.
var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Segment splits ranked matches into sentence fragments and scores each
// one for highlighting. Fragments are scored on keyword coverage and fuzzy
// overlap with the query, penalized for extreme length, kept above
// minSegmentScore, and returned sorted by score descending, truncated to
// maxSegments (DefaultMaxSegments when maxSegments <= 0).
//
// No returned segment has a trimmed length of 10 characters or fewer.
func (e *Engine) Segment(q string, matches []core.MatchResult, maxSegments int) []core.Segment {
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}

	queryTokens := len(strings.Fields(q))
	if queryTokens == 0 {
		queryTokens = 1
	}

	segments := []core.Segment{}
	for _, match := range matches {
		for _, fragment := range sentenceSplit.Split(match.Text, -1) {
			fragment = strings.TrimSpace(fragment)
			if len(fragment) <= minFragmentLength {
				continue
			}

			keywordComponent := float64(len(match.MatchedKeywords)) / float64(queryTokens)
			fuzzyComponent := float64(Fuzzy(q, fragment)) / 100

			lengthPenalty := 1.0
			if len(fragment) < shortSentenceBound || len(fragment) > longSentenceBound {
				lengthPenalty = lengthPenaltyFactor
			}

			score := (keywordComponent + fuzzyComponent) * lengthPenalty
			if score <= minSegmentScore {
				continue
			}

			segments = append(segments, core.Segment{
				Text:            fragment,
				Title:           match.Title,
				Score:           score,
				Confidence:      match.Confidence,
				MatchedKeywords: match.MatchedKeywords,
			})
		}
	}

	slices.SortStableFunc(segments, func(a, b core.Segment) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})
	if len(segments) > maxSegments {
		segments = segments[:maxSegments]
	}
	return segments
}

// SplitSentences splits text on sentence-terminal punctuation and returns
// the trimmed fragments longer than minLength characters. It is shared with
// the highlighting fallback paths.
func SplitSentences(text string, minLength int) []string {
	var out []string
	for _, fragment := range sentenceSplit.Split(text, -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) > minLength {
			out = append(out, fragment)
		}
	}
	return out
}
