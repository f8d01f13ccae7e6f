package match

import "github.com/poiesic/clausemark/core"

// Monitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during
// a ranking pass.
type Monitor interface {
	Start(query string)
	AfterAnalysis(analysis core.QueryAnalysis)
	AfterEmbedding(cacheHits int, total int)
	ClauseScored(index int, similarity float64, fuzzyScore int, combined float64)
	ClauseIncluded(index int, confidence core.Confidence)
	Finish(results []core.MatchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterAnalysis(_ core.QueryAnalysis)          {}
func (n *noopMonitor) AfterEmbedding(_ int, _ int)                 {}
func (n *noopMonitor) ClauseScored(_ int, _ float64, _ int, _ float64) {}
func (n *noopMonitor) ClauseIncluded(_ int, _ core.Confidence)     {}
func (n *noopMonitor) Finish(_ []core.MatchResult)                 {}
