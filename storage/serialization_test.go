package storage

import (
	"testing"
	"time"

	"github.com/practicepreach/preach/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalChunk(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name  string
		chunk *core.Chunk
	}{
		{
			name: "minimal chunk",
			chunk: &core.Chunk{
				Id:         core.ID(1),
				Type:       core.DocTypeSpeech,
				Party:      core.PartySPD,
				Date:       20230510,
				SourceID:   "plenary-42",
				Seq:        0,
				Content:    "Sehr geehrte Damen und Herren.",
				InsertedAt: now,
			},
		},
		{
			name: "chunk with vector",
			chunk: &core.Chunk{
				Id:         core.ID(2),
				Type:       core.DocTypeManifesto,
				Party:      core.PartyGruene,
				Date:       20210901,
				SourceID:   "programm-2021",
				Seq:        7,
				Content:    "Wir wollen den Kohleausstieg beschleunigen.",
				Vector:     []float32{0.1, 0.2, 0.3, 0.4, 0.5},
				InsertedAt: now,
			},
		},
		{
			name: "empty content",
			chunk: &core.Chunk{
				Id:         core.ID(3),
				Type:       core.DocTypeSpeech,
				Party:      core.PartyLinke,
				Date:       20240115,
				SourceID:   "plenary-99",
				Seq:        3,
				Content:    "",
				InsertedAt: now,
			},
		},
		{
			name: "unicode content",
			chunk: &core.Chunk{
				Id:         core.ID(4),
				Type:       core.DocTypeManifesto,
				Party:      core.PartyCDUCSU,
				Date:       20250201,
				SourceID:   "programm-2025",
				Seq:        12,
				Content:    "Maßnahmen für Bürgerinnen und Bürger über 65 Jahre.",
				Vector:     make([]float32, 384),
				InsertedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalChunk(tt.chunk)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalChunk(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.chunk.Id, decoded.Id)
			assert.Equal(t, tt.chunk.Type, decoded.Type)
			assert.Equal(t, tt.chunk.Party, decoded.Party)
			assert.Equal(t, tt.chunk.Date, decoded.Date)
			assert.Equal(t, tt.chunk.SourceID, decoded.SourceID)
			assert.Equal(t, tt.chunk.Seq, decoded.Seq)
			assert.Equal(t, tt.chunk.Content, decoded.Content)
			assert.True(t, tt.chunk.InsertedAt.Equal(decoded.InsertedAt))
			// Handle nil vs empty slice
			if len(tt.chunk.Vector) == 0 {
				assert.Empty(t, decoded.Vector)
			} else {
				assert.Equal(t, tt.chunk.Vector, decoded.Vector)
			}
		})
	}
}

func TestUnmarshalChunk_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalChunk(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestFilterValidate(t *testing.T) {
	valid := Filter{
		Type:      core.DocTypeSpeech,
		Party:     core.PartySPD,
		StartDate: 20230101,
		EndDate:   20231231,
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing type", func(t *testing.T) {
		f := valid
		f.Type = ""
		assert.Error(t, f.Validate())
	})

	t.Run("unknown party", func(t *testing.T) {
		f := valid
		f.Party = core.Party("Piratenpartei")
		assert.ErrorIs(t, f.Validate(), core.ErrUnknownParty)
	})

	t.Run("missing dates", func(t *testing.T) {
		f := valid
		f.StartDate = 0
		f.EndDate = 0
		assert.ErrorIs(t, f.Validate(), core.ErrInvalidDate)
	})

	t.Run("inverted range", func(t *testing.T) {
		f := valid
		f.StartDate = 20231231
		f.EndDate = 20230101
		assert.ErrorIs(t, f.Validate(), ErrInvalidQuery)
	})

	t.Run("single day range", func(t *testing.T) {
		f := valid
		f.StartDate = 20230510
		f.EndDate = 20230510
		assert.NoError(t, f.Validate())
	})
}
