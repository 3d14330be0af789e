package alignment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/practicepreach/preach/ai/mock"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/ingestion"
	"github.com/practicepreach/preach/retrieval"
	"github.com/practicepreach/preach/storage"
	"github.com/practicepreach/preach/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorerFixture struct {
	repo       storage.ChunkRepository
	embedder   *mock.MockEmbedder
	narrator   *mock.MockNarrator
	classifier *mock.MockClassifier
	scorer     *Scorer
}

func newScorerFixture(t *testing.T) *scorerFixture {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()
	retriever, err := retrieval.NewRetriever(repo, embedder)
	require.NoError(t, err)

	narrator := mock.NewMockNarrator()
	classifier := mock.NewMockClassifier()

	scorer, err := NewScorer(retriever, narrator, classifier)
	require.NoError(t, err)

	return &scorerFixture{
		repo:       repo,
		embedder:   embedder,
		narrator:   narrator,
		classifier: classifier,
		scorer:     scorer,
	}
}

func (f *scorerFixture) addChunk(t *testing.T, docType core.DocType, party core.Party, date int64, content string) {
	t.Helper()

	_, err := f.repo.AddChunks(context.Background(), &core.Chunk{
		Type:     docType,
		Party:    party,
		Date:     date,
		SourceID: "src",
		Seq:      0,
		Content:  content,
		Vector:   ingestion.NormalizeVector(mock.DeterministicVector(content, 64)),
	})
	require.NoError(t, err)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewScorer_RequiresDependencies(t *testing.T) {
	f := newScorerFixture(t)

	retriever, err := retrieval.NewRetriever(f.repo, f.embedder)
	require.NoError(t, err)

	_, err = NewScorer(nil, f.narrator, f.classifier)
	assert.ErrorIs(t, err, ErrRetrieverRequired)

	_, err = NewScorer(retriever, nil, f.classifier)
	assert.ErrorIs(t, err, ErrNarratorRequired)

	_, err = NewScorer(retriever, f.narrator, nil)
	assert.ErrorIs(t, err, ErrClassifierRequired)
}

func TestScore_ProducesFullAlignment(t *testing.T) {
	f := newScorerFixture(t)

	f.addChunk(t, core.DocTypeSpeech, core.PartySPD, 20230510, "Wir beschleunigen den Ausbau der Windkraft.")
	f.addChunk(t, core.DocTypeManifesto, core.PartySPD, 20211026, "Die SPD steht für den Ausbau erneuerbarer Energien.")

	result, err := f.scorer.Score(context.Background(), "Energiewende", core.PartySPD,
		date(2023, time.January, 1), date(2023, time.December, 31))
	require.NoError(t, err)

	assert.Equal(t, core.PartySPD, result.Party)
	assert.False(t, result.NotEnoughData)
	assert.GreaterOrEqual(t, result.ContentSimilarity, -1.0)
	assert.LessOrEqual(t, result.ContentSimilarity, 1.0)
	assert.NotEmpty(t, result.Narrative)
	assert.Equal(t, core.LabelPartlyAligned, result.Label)
}

func TestScore_NotEnoughDataWhenSpeechesMissing(t *testing.T) {
	f := newScorerFixture(t)

	// Manifesto only; no speeches in the window
	f.addChunk(t, core.DocTypeManifesto, core.PartySPD, 20211026, "Programmtext.")

	result, err := f.scorer.Score(context.Background(), "Energiewende", core.PartySPD,
		date(2023, time.January, 1), date(2023, time.December, 31))
	require.NoError(t, err)

	assert.True(t, result.NotEnoughData)
	assert.Equal(t, core.LabelUnknown, result.Label)
	assert.Zero(t, result.ContentSimilarity)
	assert.Equal(t, core.NotEnoughData, result.SimilarityDisplay())
	assert.Zero(t, f.narrator.CallCount(), "no narrative without data")
	assert.Zero(t, f.classifier.CallCount(), "no label without data")
}

func TestScore_NotEnoughDataWhenManifestosMissing(t *testing.T) {
	f := newScorerFixture(t)

	f.addChunk(t, core.DocTypeSpeech, core.PartySPD, 20230510, "Redetext.")

	result, err := f.scorer.Score(context.Background(), "Energiewende", core.PartySPD,
		date(2023, time.January, 1), date(2023, time.December, 31))
	require.NoError(t, err)

	assert.True(t, result.NotEnoughData)
}

func TestScore_ManifestoWindowSnapsToPeriod(t *testing.T) {
	f := newScorerFixture(t)

	// Manifesto dated at the start of period 20 (2021-10-26). A narrow
	// 2023 query window must still reach it after snapping, while the
	// speech window stays literal.
	f.addChunk(t, core.DocTypeManifesto, core.PartySPD, 20211026, "Programm zur Bundestagswahl.")
	f.addChunk(t, core.DocTypeSpeech, core.PartySPD, 20230510, "Rede im Plenum.")
	f.addChunk(t, core.DocTypeSpeech, core.PartySPD, 20211101, "Alte Rede außerhalb des Fensters.")

	monitor := &capturingMonitor{}
	result, err := f.scorer.ScoreWithMonitor(context.Background(), "Energiewende", core.PartySPD,
		date(2023, time.January, 1), date(2023, time.June, 30), monitor)
	require.NoError(t, err)

	assert.False(t, result.NotEnoughData)
	require.Len(t, monitor.manifestos, 1)
	require.Len(t, monitor.speeches, 1)
	assert.Equal(t, int64(20230510), monitor.speeches[0].Chunk.Date)
}

func TestScore_BeforeFirstPeriodFails(t *testing.T) {
	f := newScorerFixture(t)

	_, err := f.scorer.Score(context.Background(), "Energiewende", core.PartySPD,
		date(1930, time.January, 1), date(1930, time.December, 31))
	assert.ErrorIs(t, err, core.ErrNoPeriod)
}

func TestScore_ClassifierFailurePropagates(t *testing.T) {
	f := newScorerFixture(t)

	f.addChunk(t, core.DocTypeSpeech, core.PartySPD, 20230510, "Redetext.")
	f.addChunk(t, core.DocTypeManifesto, core.PartySPD, 20211026, "Programmtext.")

	f.classifier.ClassifyFunc = func(ctx context.Context, manifestoTexts, speechTexts string) (string, error) {
		return "", errors.New("provider down")
	}

	_, err := f.scorer.Score(context.Background(), "Energiewende", core.PartySPD,
		date(2023, time.January, 1), date(2023, time.December, 31))
	assert.Error(t, err)
}

func TestScoreParties_PartialFailureIsolation(t *testing.T) {
	f := newScorerFixture(t)

	for _, party := range core.Parties {
		f.addChunk(t, core.DocTypeSpeech, party, 20230510, "Rede der Partei "+string(party)+".")
		f.addChunk(t, core.DocTypeManifesto, party, 20211026, "Programm der Partei "+string(party)+".")
	}

	// Fail exactly one party's scoring task
	f.classifier.ClassifyFunc = func(ctx context.Context, manifestoTexts, speechTexts string) (string, error) {
		if strings.Contains(speechTexts, string(core.PartyAfD)) {
			return "", errors.New("provider down")
		}
		return string(core.LabelMostlyAligned), nil
	}

	results, err := f.scorer.ScoreParties(context.Background(), "Energiewende", core.Parties,
		date(2023, time.January, 1), date(2023, time.December, 31))
	require.NoError(t, err)

	assert.Len(t, results, len(core.Parties)-1)
	assert.NotContains(t, results, core.PartyAfD)
	for party, result := range results {
		assert.Equal(t, party, result.Party)
		assert.Equal(t, core.LabelMostlyAligned, result.Label)
	}
}

func TestScoreParties_AllSucceed(t *testing.T) {
	f := newScorerFixture(t)

	for _, party := range core.Parties {
		f.addChunk(t, core.DocTypeSpeech, party, 20230510, "Rede der Partei "+string(party)+".")
		f.addChunk(t, core.DocTypeManifesto, party, 20211026, "Programm der Partei "+string(party)+".")
	}

	results, err := f.scorer.ScoreParties(context.Background(), "Energiewende", core.Parties,
		date(2023, time.January, 1), date(2023, time.December, 31))
	require.NoError(t, err)
	assert.Len(t, results, len(core.Parties))
}

type capturingMonitor struct {
	speeches   []*core.ScoredChunk
	manifestos []*core.ScoredChunk
	similarity float64
	narrative  string
	result     *core.Alignment
}

func (m *capturingMonitor) Start(_ string, _ core.Party) {}
func (m *capturingMonitor) AfterSpeechRetrieval(chunks []*core.ScoredChunk) {
	m.speeches = chunks
}
func (m *capturingMonitor) AfterManifestoRetrieval(chunks []*core.ScoredChunk) {
	m.manifestos = chunks
}
func (m *capturingMonitor) AfterSimilarity(similarity float64) { m.similarity = similarity }
func (m *capturingMonitor) AfterNarrative(narrative string)    { m.narrative = narrative }
func (m *capturingMonitor) Finish(result *core.Alignment)      { m.result = result }
