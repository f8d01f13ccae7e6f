package match

import (
	"testing"

	"github.com/poiesic/clausemark/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	engine, _ := newTestEngine(t)

	t.Run("splits matches into scored fragments", func(t *testing.T) {
		matches := []core.MatchResult{
			{
				Title:           "Child Custody",
				Text:            "The mother shall have primary physical custody of the minor children. The father shall have visitation rights every other weekend.",
				Confidence:      core.ConfidenceHigh,
				MatchedKeywords: []string{"custody", "children"},
			},
		}

		segments := engine.Segment("custody children", matches, 10)
		require.NotEmpty(t, segments)

		for _, segment := range segments {
			assert.Equal(t, "Child Custody", segment.Title)
			assert.Equal(t, core.ConfidenceHigh, segment.Confidence)
			assert.Greater(t, segment.Score, minSegmentScore)
		}
	})

	t.Run("drops short fragments", func(t *testing.T) {
		matches := []core.MatchResult{
			{
				Title:           "Custody",
				Text:            "Short one. The custodial parent retains custody of the children at all times.",
				MatchedKeywords: []string{"custody", "children"},
			},
		}

		segments := engine.Segment("custody children", matches, 10)
		require.NotEmpty(t, segments)
		for _, segment := range segments {
			assert.Greater(t, len(segment.Text), minFragmentLength)
		}
	})

	t.Run("drops fragments below score threshold", func(t *testing.T) {
		matches := []core.MatchResult{
			{
				Title: "Irrelevant",
				Text:  "Completely unrelated verbiage about gardening tools and soil.",
			},
		}

		segments := engine.Segment("qqqq", matches, 10)
		assert.Empty(t, segments)
	})

	t.Run("sorted by score descending", func(t *testing.T) {
		matches := []core.MatchResult{
			{
				Title:           "Custody",
				Text:            "The mother shall have primary physical custody of the minor children. Holiday schedules alternate between the parties each calendar year.",
				MatchedKeywords: []string{"custody", "children"},
			},
		}

		segments := engine.Segment("custody of the children", matches, 10)
		for i := 1; i < len(segments); i++ {
			assert.GreaterOrEqual(t, segments[i-1].Score, segments[i].Score)
		}
	})

	t.Run("truncates to max segments", func(t *testing.T) {
		matches := []core.MatchResult{
			{
				Title:           "Custody",
				Text:            "The mother shall have primary physical custody of the minor children. The father shall have custody of the children during summer break.",
				MatchedKeywords: []string{"custody", "children"},
			},
		}

		segments := engine.Segment("custody children", matches, 1)
		assert.Len(t, segments, 1)
	})

	t.Run("empty matches", func(t *testing.T) {
		assert.Empty(t, engine.Segment("custody", nil, 10))
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		fragments := SplitSentences("First sentence here. Second sentence there! Third one over here?", 5)
		assert.Equal(t, []string{"First sentence here", "Second sentence there", "Third one over here"}, fragments)
	})

	t.Run("filters by minimum length", func(t *testing.T) {
		fragments := SplitSentences("Tiny. This fragment is long enough to keep.", 10)
		assert.Equal(t, []string{"This fragment is long enough to keep"}, fragments)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitSentences("", 10))
	})
}
