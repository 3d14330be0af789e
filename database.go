// Copyright 2025 PracticePreach
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


package preach

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/practicepreach/preach/ai"
	"github.com/practicepreach/preach/ai/openai"
	"github.com/practicepreach/preach/alignment"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/ingestion"
	"github.com/practicepreach/preach/reindex"
	"github.com/practicepreach/preach/retrieval"
	"github.com/practicepreach/preach/storage"
	"github.com/practicepreach/preach/storage/badger"
)

// Database wires the vector store and AI services into one handle. It is
// the entry point for embedding applications: open it once, derive
// pipelines, retrievers and scorers from it, close it on shutdown.
type Database struct {
	backend   *badger.Backend
	chunkRepo storage.ChunkRepository
	provider  ai.Provider
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	logger   *slog.Logger
	inMemory bool
}

// WithAIConfig sets the configuration used to construct the OpenAI-compatible
// provider. Ignored when WithProvider is given.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider instead of constructing one
// from configuration. The database takes ownership and closes it.
func WithProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithDatabaseLogger sets the logger for the database and its components.
func WithDatabaseLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// WithInMemoryStorage opens the store in memory, discarding data on close.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens the chunk store at filePath and constructs the AI
// provider. The returned database owns both and releases them on Close.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			chunkRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:   backend,
		chunkRepo: chunkRepo,
		provider:  provider,
		logger:    options.logger,
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.chunkRepo.Close(); err != nil {
		db.logger.Error("error closing chunk repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ChunkRepository() storage.ChunkRepository {
	return db.chunkRepo
}

func (db *Database) Provider() ai.Provider {
	return db.provider
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.chunkRepo, db.provider.Embedder(), opts...)
}

func (db *Database) NewRetriever(opts ...retrieval.Option) (*retrieval.Retriever, error) {
	return retrieval.NewRetriever(db.chunkRepo, db.provider.Embedder(), opts...)
}

func (db *Database) NewScorer(retrieverOpts []retrieval.Option, opts ...alignment.Option) (*alignment.Scorer, error) {
	retriever, err := db.NewRetriever(retrieverOpts...)
	if err != nil {
		return nil, err
	}
	return alignment.NewScorer(retriever, db.provider.Narrator(), db.provider.Classifier(), opts...)
}

// NewReindexer builds a reindexer over the whole chunk collection, writing
// progress to the given writer.
func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(db.chunkRepo, db.provider.Embedder(), config, progress)
}

// EnsureIngested loads the corpus file into the store unless chunks are
// already present. Ingestion is a one-time operation: a populated store is
// left untouched and re-running with the same file is a no-op either way.
// Returns the number of chunks stored, zero when skipped.
func (db *Database) EnsureIngested(ctx context.Context, filePath string, opts ...ingestion.Option) (int, error) {
	count, err := db.chunkRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		db.logger.Info("store already populated, skipping ingestion", "chunks", count)
		return 0, nil
	}

	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return 0, err
	}
	return pipeline.IngestFile(ctx, filePath)
}

// Answer scores one party's speeches in [start, end] against its manifesto
// for the given topic. The result carries the narrative answer, the content
// similarity (or the not-enough-data sentinel via SimilarityDisplay) and the
// alignment label.
func (db *Database) Answer(ctx context.Context, topic string, party core.Party, start, end time.Time, opts ...alignment.Option) (*core.Alignment, error) {
	scorer, err := db.NewScorer(nil, opts...)
	if err != nil {
		return nil, err
	}
	return scorer.Score(ctx, topic, party, start, end)
}

// Compare scores several parties concurrently on the same topic and window.
// Parties whose scoring fails are omitted from the result.
func (db *Database) Compare(ctx context.Context, topic string, parties []core.Party, start, end time.Time, opts ...alignment.Option) (map[core.Party]*core.Alignment, error) {
	scorer, err := db.NewScorer(nil, opts...)
	if err != nil {
		return nil, err
	}
	return scorer.ScoreParties(ctx, topic, parties, start, end)
}
