package ingestion

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/practicepreach/preach/ai/mock"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/storage"
	"github.com/practicepreach/preach/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, embedder *mock.MockEmbedder, opts ...Option) (*Pipeline, storage.ChunkRepository) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	pipeline, err := NewPipeline(repo, embedder, opts...)
	require.NoError(t, err)
	return pipeline, repo
}

func testDocument(docType core.DocType, party core.Party, date int64, sourceID, text string) *core.Document {
	return &core.Document{
		Type:     docType,
		Party:    party,
		Date:     date,
		SourceID: sourceID,
		Text:     text,
	}
}

func TestNewPipeline_RequiresDependencies(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	_, err = NewPipeline(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewPipeline(repo, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestIngestDocuments_StoresChunksWithMetadata(t *testing.T) {
	pipeline, repo := newTestPipeline(t, mock.NewMockEmbedder())

	ctx := context.Background()
	doc := testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1",
		"Wir investieren in erneuerbare Energien. Der Ausbau der Windkraft beschleunigt sich.")

	stored, err := pipeline.IngestDocuments(ctx, doc)
	require.NoError(t, err)
	require.Greater(t, stored, 0)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(stored), count)

	chunks, err := repo.ListChunks(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, chunks, stored)
	for _, c := range chunks {
		assert.Equal(t, core.DocTypeSpeech, c.Type)
		assert.Equal(t, core.PartySPD, c.Party)
		assert.Equal(t, int64(20230510), c.Date)
		assert.Equal(t, "rede-1", c.SourceID)
		assert.NotEmpty(t, c.Vector)
	}
}

func TestIngestDocuments_StoresUnitVectors(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{3, 4} // magnitude 5
		}
		return vectors, nil
	}

	pipeline, repo := newTestPipeline(t, embedder)

	ctx := context.Background()
	_, err := pipeline.IngestDocuments(ctx, testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1", "Kurzer Redetext."))
	require.NoError(t, err)

	chunks, err := repo.ListChunks(ctx, 0, 10)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	var magnitude float64
	for _, v := range chunks[0].Vector {
		magnitude += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
}

func TestIngestDocuments_BoundedBatches(t *testing.T) {
	var batchSizes []int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		batchSizes = append(batchSizes, len(texts))
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			vectors[i] = mock.DeterministicVector(text, 8)
		}
		return vectors, nil
	}

	pipeline, _ := newTestPipeline(t, embedder, WithBatchSize(2))

	docs := []*core.Document{
		testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1", "Erster Satz. Zweiter Satz."),
		testDocument(core.DocTypeSpeech, core.PartySPD, 20230511, "rede-2", "Dritter Satz. Vierter Satz."),
		testDocument(core.DocTypeSpeech, core.PartySPD, 20230512, "rede-3", "Fünfter Satz. Sechster Satz."),
	}

	_, err := pipeline.IngestDocuments(context.Background(), docs...)
	require.NoError(t, err)

	require.NotEmpty(t, batchSizes)
	for _, size := range batchSizes {
		assert.LessOrEqual(t, size, 2)
	}
}

func TestIngestDocuments_RetriesTransientEmbeddingFailures(t *testing.T) {
	calls := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("rate limited")
		}
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			vectors[i] = mock.DeterministicVector(text, 8)
		}
		return vectors, nil
	}

	pipeline, repo := newTestPipeline(t, embedder, WithRetry(3, time.Millisecond))

	stored, err := pipeline.IngestDocuments(context.Background(),
		testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1", "Redetext."))
	require.NoError(t, err)
	assert.Greater(t, stored, 0)
	assert.GreaterOrEqual(t, calls, 2)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(stored), count)
}

func TestIngestDocuments_PersistentFailureAborts(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("provider down")
	}

	pipeline, repo := newTestPipeline(t, embedder, WithRetry(2, time.Millisecond))

	stored, err := pipeline.IngestDocuments(context.Background(),
		testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1", "Redetext."))
	require.Error(t, err)
	assert.Zero(t, stored)

	// Failed batch must not leave partial chunks behind
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngestDocuments_SkipsInvalidDocuments(t *testing.T) {
	pipeline, repo := newTestPipeline(t, mock.NewMockEmbedder())

	ctx := context.Background()
	invalid := testDocument(core.DocTypeSpeech, core.Party("Piratenpartei"), 20230510, "rede-x", "Text.")
	valid := testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1", "Gültiger Text.")

	stored, err := pipeline.IngestDocuments(ctx, invalid, valid)
	require.NoError(t, err)
	assert.Greater(t, stored, 0)

	chunks, err := repo.ListChunks(ctx, 0, 100)
	require.NoError(t, err)
	for _, c := range chunks {
		assert.Equal(t, core.PartySPD, c.Party)
	}
}

func TestCount_GatesReingestion(t *testing.T) {
	pipeline, _ := newTestPipeline(t, mock.NewMockEmbedder())

	ctx := context.Background()
	count, err := pipeline.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = pipeline.IngestDocuments(ctx, testDocument(core.DocTypeManifesto, core.PartyCDUCSU, 20210801, "programm-1", "Programmtext."))
	require.NoError(t, err)

	count, err = pipeline.Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, count, int64(0))
}

func TestIngestDocuments_EmbeddingMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{}, nil
	}

	pipeline, _ := newTestPipeline(t, embedder)

	_, err := pipeline.IngestDocuments(context.Background(),
		testDocument(core.DocTypeSpeech, core.PartySPD, 20230510, "rede-1", "Redetext."))
	assert.ErrorIs(t, err, ErrEmbeddingMismatch)
}
