package match

import (
	"context"
	"testing"

	"github.com/poiesic/clausemark/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighting(t *testing.T) {
	engine, _ := newTestEngine(t)

	result, err := engine.Highlighting(context.Background(), "Who has custody of the children?", agreementClauses, 5, 10)
	require.NoError(t, err)

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "Child Custody", result.Matches[0].Title)

	assert.Equal(t, "Who has custody of the children?", result.Query.OriginalQuery)
	assert.Equal(t, core.IntentResponsibility, result.Query.Intent)
	assert.Contains(t, result.Query.Keywords, "custody")

	require.NotEmpty(t, result.Segments)
	for _, segment := range result.Segments {
		assert.Greater(t, len(segment.Text), minFragmentLength)
	}
}

// recordingMonitor captures every callback for assertion.
type recordingMonitor struct {
	started       string
	analysis      core.QueryAnalysis
	cacheHits     int
	embeddedTotal int
	scored        int
	included      int
	finished      []core.MatchResult
}

func (m *recordingMonitor) Start(query string)                        { m.started = query }
func (m *recordingMonitor) AfterAnalysis(analysis core.QueryAnalysis) { m.analysis = analysis }
func (m *recordingMonitor) AfterEmbedding(cacheHits, total int) {
	m.cacheHits = cacheHits
	m.embeddedTotal = total
}
func (m *recordingMonitor) ClauseScored(_ int, _ float64, _ int, _ float64) { m.scored++ }
func (m *recordingMonitor) ClauseIncluded(_ int, _ core.Confidence)         { m.included++ }
func (m *recordingMonitor) Finish(results []core.MatchResult)               { m.finished = results }

func TestRankWithMonitor(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	monitor := &recordingMonitor{}
	results, err := engine.RankWithMonitor(ctx, "Who has custody of the children?", agreementClauses, 5, monitor)
	require.NoError(t, err)

	assert.Equal(t, "Who has custody of the children?", monitor.started)
	assert.Equal(t, core.IntentResponsibility, monitor.analysis.Intent)
	assert.Equal(t, len(agreementClauses)+1, monitor.embeddedTotal)
	assert.Equal(t, 0, monitor.cacheHits)
	assert.Equal(t, len(agreementClauses), monitor.scored)
	assert.Equal(t, len(results), monitor.included)
	assert.Equal(t, results, monitor.finished)

	// A second identical pass is served entirely from the cache.
	second := &recordingMonitor{}
	_, err = engine.RankWithMonitor(ctx, "Who has custody of the children?", agreementClauses, 5, second)
	require.NoError(t, err)
	assert.Equal(t, len(agreementClauses)+1, second.cacheHits)
}
