package badger

import (
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend

	// ownsBackend is set when the repository opened the backend itself
	// and is responsible for closing it.
	ownsBackend bool
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewRepository opens a BadgerDB database at path and returns a chunk
// repository backed by it. Closing the repository closes the database.
//
// Returns storage.ChunkRepository interface (not *ChunkRepository) to
// enforce abstraction and prevent coupling to BadgerDB specifics.
func NewRepository(path string) (storage.ChunkRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}

	repo, err := NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	repo.ownsBackend = true
	return repo, nil
}

// NewChunkRepository creates a new ChunkRepository over an existing backend.
func NewChunkRepository(backend *Backend) (*ChunkRepository, error) {
	return &ChunkRepository{
		backend: backend,
	}, nil
}

// Close closes the backend if this repository owns it.
func (r *ChunkRepository) Close() error {
	if r.ownsBackend {
		return r.backend.Close()
	}
	return nil
}

// WithTransaction delegates to the backend.
func (r *ChunkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddChunks adds one or more chunks to storage atomically.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			// IDs are content-based, so re-ingesting the same source is
			// idempotent rather than duplicating.
			if chunk.Id == 0 {
				chunk.Id = core.ChunkID(chunk.Type, chunk.Party, chunk.Date, chunk.SourceID, chunk.Seq, chunk.Content)
			}
			if chunk.InsertedAt.IsZero() {
				chunk.InsertedAt = time.Now().UTC()
			}

			// Store primary record
			key := makeChunkKey(chunk.Id)
			value := storage.MarshalChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update partition index
			partKey := makePartitionKey(chunk)
			if err := tx.Set(partKey, storage.MarshalID(chunk.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// UpdateChunks updates existing chunks.
func (r *ChunkRepository) UpdateChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(chunk.Id)

			// Read old chunk to detect metadata changes
			old, err := r.readChunk(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			if chunk.InsertedAt.IsZero() {
				chunk.InsertedAt = old.InsertedAt
			}

			// Store updated chunk
			value := storage.MarshalChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Move the partition index entry if metadata changed
			oldPartKey := makePartitionKey(old)
			newPartKey := makePartitionKey(chunk)
			if !bytes.Equal(oldPartKey, newPartKey) {
				if err := tx.Delete(oldPartKey); err != nil {
					return err
				}
				if err := tx.Set(newPartKey, storage.MarshalID(chunk.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error) {
	var result *core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeChunkKey(id)
		var err error
		result, err = r.readChunk(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetChunks retrieves multiple chunks by their IDs.
func (r *ChunkRepository) GetChunks(ctx context.Context, ids ...core.ID) ([]*core.Chunk, error) {
	var result []*core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeChunkKey(id)
			chunk, err := r.readChunk(tx, key)
			if err != nil {
				return err
			}
			if chunk != nil {
				result = append(result, chunk)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListChunks pages through all stored chunks in key order.
func (r *ChunkRepository) ListChunks(ctx context.Context, afterID core.ID, limit int) ([]*core.Chunk, error) {
	var results []*core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		if afterID == 0 {
			iter.Rewind()
		} else {
			iter.Seek(makeChunkKey(afterID))
			// Skip the cursor chunk itself
			if iter.Valid() && bytes.Equal(iter.Item().Key(), makeChunkKey(afterID)) {
				iter.Next()
			}
		}

		for ; iter.Valid() && len(results) < limit; iter.Next() {
			var chunk *core.Chunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if chunk != nil {
				results = append(results, chunk)
			}
		}
		return nil
	}, false)

	return results, err
}

// Count returns the total number of stored chunks.
func (r *ChunkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// FindSimilar finds chunks similar to the given vector within the
// filter's (type, party, date range) partition. Only the matching
// partition's index is scanned, so chunks from other parties or
// document types never enter scoring.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, filter storage.Filter, limit int) ([]*core.ScoredChunk, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	partition := makePartitionPrefix(filter.Type, filter.Party)
	startKey := makePartialPartitionKey(filter.Type, filter.Party, filter.StartDate)

	var results []*core.ScoredChunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = partition
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()

			// Both date bounds are inclusive
			if partitionKeyDate(key, len(partition)) > filter.EndDate {
				break
			}

			// Read the ID from the index
			var chunkID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				chunkID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full chunk
			chunk, err := r.readChunk(tx, makeChunkKey(chunkID))
			if err != nil {
				return err
			}
			if chunk == nil || len(chunk.Vector) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			results = append(results, &core.ScoredChunk{
				Chunk: chunk,
				Score: dotProduct(vector, chunk.Vector),
			})
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(results, func(a, b *core.ScoredChunk) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// readChunk reads a chunk from the transaction.
func (r *ChunkRepository) readChunk(tx *badger.Txn, key []byte) (*core.Chunk, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var chunk *core.Chunk
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		chunk, unmarshalErr = storage.UnmarshalChunk(val)
		return unmarshalErr
	})
	return chunk, err
}
