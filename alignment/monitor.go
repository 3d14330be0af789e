package alignment

import (
	"github.com/practicepreach/preach/core"
)

// ScoreMonitor provides hooks to observe the scoring process.
// Implement this interface to track intermediate steps and results.
type ScoreMonitor interface {
	Start(topic string, party core.Party)
	AfterSpeechRetrieval(chunks []*core.ScoredChunk)
	AfterManifestoRetrieval(chunks []*core.ScoredChunk)
	AfterSimilarity(similarity float64)
	AfterNarrative(narrative string)
	Finish(result *core.Alignment)
}

// noopScoreMonitor is a no-op implementation of ScoreMonitor
type noopScoreMonitor struct{}

var _ ScoreMonitor = (*noopScoreMonitor)(nil)

func (n *noopScoreMonitor) Start(_ string, _ core.Party)                  {}
func (n *noopScoreMonitor) AfterSpeechRetrieval(_ []*core.ScoredChunk)    {}
func (n *noopScoreMonitor) AfterManifestoRetrieval(_ []*core.ScoredChunk) {}
func (n *noopScoreMonitor) AfterSimilarity(_ float64)                     {}
func (n *noopScoreMonitor) AfterNarrative(_ string)                       {}
func (n *noopScoreMonitor) Finish(_ *core.Alignment)                      {}
