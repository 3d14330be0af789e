package storage

import (
	"context"

	"github.com/practicepreach/preach/core"
)

// Filter constrains which chunks a query may see. All three dimensions
// are mandatory: a query always names a document type, a party and an
// inclusive date range. Unfiltered scans over the whole collection are
// rejected by Validate.
type Filter struct {
	// Type restricts results to one document type.
	Type core.DocType

	// Party restricts results to one party, matched exactly against the
	// canonical party name stored with each chunk.
	Party core.Party

	// StartDate and EndDate bound the chunk date as YYYYMMDD integers.
	// Both bounds are inclusive.
	StartDate int64
	EndDate   int64
}

// Validate checks that the filter names all three dimensions and that
// the date range is well-formed.
func (f Filter) Validate() error {
	if _, err := core.ParseDocType(string(f.Type)); err != nil {
		return err
	}
	if !f.Party.Valid() {
		return core.ErrUnknownParty
	}
	if f.StartDate <= 0 || f.EndDate <= 0 {
		return core.ErrInvalidDate
	}
	if f.StartDate > f.EndDate {
		return ErrInvalidQuery
	}
	return nil
}

// ChunkRepository provides operations for managing document chunks.
// Implementations must be thread-safe and support concurrent access.
type ChunkRepository interface {
	// AddChunks adds one or more chunks to storage atomically.
	// Sets InsertedAt timestamp if not already set.
	// Returns the stored chunks with timestamps populated.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// UpdateChunks updates existing chunks.
	// Returns ErrNotFound if any chunk doesn't exist.
	UpdateChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunks retrieves multiple chunks by their IDs.
	// Returns only the chunks that exist (no error for missing chunks).
	GetChunks(ctx context.Context, ids ...core.ID) ([]*core.Chunk, error)

	// ListChunks pages through all stored chunks in key order.
	// Pass afterID=0 to start from the beginning; subsequent pages pass
	// the last ID of the previous page. Returns up to limit chunks.
	ListChunks(ctx context.Context, afterID core.ID, limit int) ([]*core.Chunk, error)

	// Count returns the total number of stored chunks.
	Count(ctx context.Context) (int64, error)

	// FindSimilar finds chunks similar to the given vector, considering
	// only chunks matched by the filter. Results carry their stored
	// vectors and are ordered by cosine similarity, highest first, up to
	// limit results. An empty result is valid and not an error.
	FindSimilar(ctx context.Context, vector []float32, filter Filter, limit int) ([]*core.ScoredChunk, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
