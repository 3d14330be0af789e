package ingestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/practicepreach/preach/ai"
	"github.com/practicepreach/preach/chunk"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/storage"
)

const (
	// DefaultBatchSize bounds how many chunks are embedded and stored
	// per batch. A tuning knob, not a correctness constraint.
	DefaultBatchSize = 64

	// DefaultChunkSize and DefaultChunkOverlap configure the sentence
	// chunker: chunks of roughly 500 characters with 200 characters of
	// trailing overlap.
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 200

	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
)

// Pipeline turns corpus documents into embedded chunks in the store.
// Ingestion runs sequentially: it is a one-time startup phase that must
// complete, or be skipped via the count gate, before query traffic.
type Pipeline struct {
	repository storage.ChunkRepository
	embedder   ai.Embedder
	chunker    chunk.Chunker
	batchSize  int

	maxAttempts int
	baseDelay   time.Duration

	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithBatchSize sets how many chunks are embedded and stored per batch.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithChunker sets a custom chunker.
// Default is a sentence chunker with DefaultChunkSize/DefaultChunkOverlap.
func WithChunker(c chunk.Chunker) Option {
	return func(p *Pipeline) error {
		if c != nil {
			p.chunker = c
		}
		return nil
	}
}

// WithRetry configures retry behavior for embedding calls.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.ChunkRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	p := &Pipeline{
		repository:  repository,
		embedder:    embedder,
		chunker:     chunk.NewSentenceChunker(DefaultChunkSize, DefaultChunkOverlap),
		batchSize:   DefaultBatchSize,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		logger:      slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Count returns the number of chunks currently stored. Callers use it
// as the skip-if-populated gate before re-ingesting a source.
func (p *Pipeline) Count(ctx context.Context) (int64, error) {
	return p.repository.Count(ctx)
}

// IngestFile loads a corpus source file and ingests its documents.
// Returns the number of chunks stored.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (int, error) {
	documents, err := LoadCSV(path)
	if err != nil {
		return 0, err
	}
	return p.IngestDocuments(ctx, documents...)
}

// IngestDocuments chunks, embeds and stores the given documents in
// bounded batches. Each batch is stored atomically: either all of its
// chunks land, or the batch fails after retries and ingestion aborts.
// Returns the number of chunks stored.
func (p *Pipeline) IngestDocuments(ctx context.Context, documents ...*core.Document) (int, error) {
	var (
		batch  []*core.Chunk
		stored int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := p.storeBatch(ctx, batch); err != nil {
			return err
		}
		stored += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, doc := range documents {
		if err := core.ValidateDocument(doc); err != nil {
			p.logger.Warn("skipping invalid document", "source_id", doc.SourceID, "err", err)
			continue
		}

		for seq, content := range p.chunker.Chunk(doc.Text) {
			batch = append(batch, &core.Chunk{
				Id:       core.ChunkID(doc.Type, doc.Party, doc.Date, doc.SourceID, seq, content),
				Type:     doc.Type,
				Party:    doc.Party,
				Date:     doc.Date,
				SourceID: doc.SourceID,
				Seq:      seq,
				Content:  content,
			})
			if len(batch) >= p.batchSize {
				if err := flush(); err != nil {
					return stored, err
				}
			}
		}
	}

	if err := flush(); err != nil {
		return stored, err
	}

	p.logger.Info("ingestion complete", "documents", len(documents), "chunks", stored)
	return stored, nil
}

// storeBatch embeds one batch and writes it atomically.
func (p *Pipeline) storeBatch(ctx context.Context, batch []*core.Chunk) error {
	texts := make([]string, len(batch))
	for i, c := range batch {
		texts[i] = c.Content
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = p.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, p.maxAttempts, p.baseDelay)
	if err != nil {
		p.logger.Error("embedding batch failed", "chunks", len(batch), "err", err)
		return err
	}
	if len(vectors) != len(batch) {
		return ErrEmbeddingMismatch
	}

	// Store unit vectors so similarity reduces to a dot product.
	for i, c := range batch {
		c.Vector = NormalizeVector(vectors[i])
	}

	if _, err := p.repository.AddChunks(ctx, batch...); err != nil {
		p.logger.Error("storing batch failed", "chunks", len(batch), "err", err)
		return err
	}

	p.logger.Debug("batch stored", "chunks", len(batch))
	return nil
}
