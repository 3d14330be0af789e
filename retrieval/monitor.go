package retrieval

import (
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/storage"
)

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps during retrieval.
type Monitor interface {
	Start(topic string, filter storage.Filter)
	AfterTopicEmbedding(dims int)
	Hit(chunk *core.ScoredChunk)
	Finish(results []*core.ScoredChunk)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ storage.Filter) {}
func (n *noopMonitor) AfterTopicEmbedding(_ int)        {}
func (n *noopMonitor) Hit(_ *core.ScoredChunk)          {}
func (n *noopMonitor) Finish(_ []*core.ScoredChunk)     {}
