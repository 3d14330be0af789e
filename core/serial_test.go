package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkMUSRoundTrip(t *testing.T) {
	chunk := Chunk{
		Id:         IDFromContent("chunk"),
		Type:       DocTypeSpeech,
		Party:      PartyCDUCSU,
		Date:       20230115,
		SourceID:   "ID2099901",
		Seq:        3,
		Content:    "Die Energiewende braucht Planungssicherheit. Wir handeln jetzt.",
		Vector:     []float32{0.25, -0.5, 0.125},
		InsertedAt: time.Date(2025, time.June, 1, 12, 30, 0, 0, time.UTC),
	}

	bs := make([]byte, ChunkMUS.Size(chunk))
	n := ChunkMUS.Marshal(chunk, bs)
	assert.Equal(t, len(bs), n)

	got, n, err := ChunkMUS.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.Equal(t, chunk, got)
}

func TestChunkMUSSkip(t *testing.T) {
	chunk := Chunk{
		Id:      42,
		Type:    DocTypeManifesto,
		Party:   PartyLinke,
		Date:    20211026,
		Content: "Mieten deckeln.",
		Vector:  []float32{1, 0},
	}

	bs := make([]byte, ChunkMUS.Size(chunk))
	ChunkMUS.Marshal(chunk, bs)

	n, err := ChunkMUS.Skip(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
}

func TestChunkMUSUnmarshalTruncated(t *testing.T) {
	chunk := Chunk{Id: 7, Type: DocTypeSpeech, Party: PartySPD, Date: 20220101, Content: "Rede", Vector: []float32{0.5}}
	bs := make([]byte, ChunkMUS.Size(chunk))
	ChunkMUS.Marshal(chunk, bs)

	_, _, err := ChunkMUS.Unmarshal(bs[:len(bs)/2])
	assert.Error(t, err)
}
