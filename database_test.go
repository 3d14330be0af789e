package preach

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/practicepreach/preach/ai/mock"
	"github.com/practicepreach/preach/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase("", WithInMemoryStorage(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func writeCorpusFile(t *testing.T, rows []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "corpus.csv")
	content := "type,date,id,party,text\n"
	for _, row := range rows {
		content += row + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func corpusRow(docType, date, id, party, text string) string {
	return fmt.Sprintf("%s,%s,%s,%s,%q", docType, date, id, party, text)
}

func TestNewDatabase_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := NewDatabase(path, WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestDatabase_EnsureIngested(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	path := writeCorpusFile(t, []string{
		corpusRow("speech", "10.05.2023", "rede-1", "SPD", "Die Energiewende ist die zentrale Aufgabe dieser Legislaturperiode."),
		corpusRow("manifesto", "26.10.2021", "programm-1", "SPD", "Wir wollen den Ausbau erneuerbarer Energien massiv beschleunigen."),
	})

	stored, err := db.EnsureIngested(ctx, path)
	require.NoError(t, err)
	assert.Greater(t, stored, 0, "first run should store chunks")

	count, err := db.ChunkRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(stored), count)

	// Second run is a no-op
	stored, err = db.EnsureIngested(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, stored, "populated store should skip ingestion")

	after, err := db.ChunkRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, after, "chunk count should be unchanged")
}

func TestDatabase_Answer(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	path := writeCorpusFile(t, []string{
		corpusRow("speech", "10.05.2023", "rede-1", "SPD", "Die Energiewende ist die zentrale Aufgabe dieser Legislaturperiode."),
		corpusRow("manifesto", "26.10.2021", "programm-1", "SPD", "Wir wollen den Ausbau erneuerbarer Energien massiv beschleunigen."),
	})
	_, err := db.EnsureIngested(ctx, path)
	require.NoError(t, err)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	result, err := db.Answer(ctx, "Klima, Umwelt und Energie", core.PartySPD, start, end)
	require.NoError(t, err)

	assert.Equal(t, core.PartySPD, result.Party)
	assert.False(t, result.NotEnoughData)
	assert.NotEmpty(t, result.Narrative)
	assert.Contains(t, result.SimilarityDisplay(), "%")
	assert.Contains(t, core.AlignmentLabels, result.Label)
}

func TestDatabase_Answer_NotEnoughData(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	// Manifesto only, no speeches in any window
	path := writeCorpusFile(t, []string{
		corpusRow("manifesto", "26.10.2021", "programm-1", "SPD", "Wir wollen den Ausbau erneuerbarer Energien massiv beschleunigen."),
	})
	_, err := db.EnsureIngested(ctx, path)
	require.NoError(t, err)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	result, err := db.Answer(ctx, "Klima, Umwelt und Energie", core.PartySPD, start, end)
	require.NoError(t, err)

	assert.True(t, result.NotEnoughData)
	assert.Equal(t, core.NotEnoughData, result.SimilarityDisplay())
	assert.Equal(t, core.LabelUnknown, result.Label)
}

func TestDatabase_Compare(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	path := writeCorpusFile(t, []string{
		corpusRow("speech", "10.05.2023", "rede-1", "SPD", "Die Energiewende ist die zentrale Aufgabe dieser Legislaturperiode."),
		corpusRow("manifesto", "26.10.2021", "programm-1", "SPD", "Wir wollen den Ausbau erneuerbarer Energien massiv beschleunigen."),
		corpusRow("speech", "12.05.2023", "rede-2", "CDU/CSU", "Versorgungssicherheit und bezahlbare Energie gehören zusammen."),
		corpusRow("manifesto", "26.10.2021", "programm-2", "CDU/CSU", "Wir setzen auf einen breiten Energiemix und Technologieoffenheit."),
	})
	_, err := db.EnsureIngested(ctx, path)
	require.NoError(t, err)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	results, err := db.Compare(ctx, "Klima, Umwelt und Energie", []core.Party{core.PartySPD, core.PartyCDUCSU, core.PartyAfD}, start, end)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.False(t, results[core.PartySPD].NotEnoughData)
	assert.False(t, results[core.PartyCDUCSU].NotEnoughData)
	assert.True(t, results[core.PartyAfD].NotEnoughData, "party without corpus data gets the sentinel")
}

func TestDatabase_NewReindexer(t *testing.T) {
	db := newTestDatabase(t)

	r := db.NewReindexer(nil, os.Stderr)
	assert.NotNil(t, r)
}
