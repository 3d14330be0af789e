package retrieval

import (
	"context"
	"log/slog"

	"github.com/practicepreach/preach/ai"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/storage"
)

// DefaultK is the number of chunks retrieved per query.
const DefaultK = 50

// Retriever performs filtered semantic retrieval over the chunk store.
// Every query names a topic, a party, a document type and an inclusive
// date range; the filter is compound and mandatory.
type Retriever struct {
	repository storage.ChunkRepository
	embedder   ai.Embedder
	k          int
	logger     *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLimit sets the number of chunks retrieved per query.
// Default is DefaultK.
func WithLimit(k int) Option {
	return func(r *Retriever) error {
		if k < 1 {
			k = 1
		}
		r.k = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a new retriever.
func NewRetriever(repository storage.ChunkRepository, embedder ai.Embedder, opts ...Option) (*Retriever, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Retriever{
		repository: repository,
		embedder:   embedder,
		k:          DefaultK,
		logger:     slog.Default().With("component", "retrieval"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve returns the chunks most relevant to the topic within the
// filter's partition, ranked by cosine similarity, highest first.
// An empty result is valid and not an error.
func (r *Retriever) Retrieve(ctx context.Context, topic string, filter storage.Filter) ([]*core.ScoredChunk, error) {
	return r.RetrieveWithMonitor(ctx, topic, filter, nil)
}

// RetrieveWithMonitor performs a retrieval with monitoring hooks.
// The monitor receives callbacks at each stage of the retrieval.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, topic string, filter storage.Filter, monitor Monitor) ([]*core.ScoredChunk, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	monitor.Start(topic, filter)

	embedding, err := r.embedder.EmbedText(ctx, topic)
	if err != nil {
		r.logger.Error("error generating embedding for topic", "topic", topic, "err", err)
		return nil, err
	}
	monitor.AfterTopicEmbedding(len(embedding))

	results, err := r.repository.FindSimilar(ctx, embedding, filter, r.k)
	if err != nil {
		r.logger.Error("error querying for similar chunks", "err", err)
		return nil, err
	}

	for _, sc := range results {
		monitor.Hit(sc)
	}
	monitor.Finish(results)

	r.logger.Debug("retrieval complete",
		"topic", topic,
		"party", filter.Party,
		"type", filter.Type,
		"hits", len(results))

	return results, nil
}
