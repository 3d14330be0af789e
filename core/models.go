package core

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored chunks.
// It is generated by content-based hashing so that identical chunks
// derived from the same source record produce identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocType identifies the kind of political document a chunk was derived from.
type DocType string

const (
	// DocTypeManifesto is a party's written policy platform for one
	// legislative period.
	DocTypeManifesto DocType = "manifesto"
	// DocTypeSpeech is a transcribed parliamentary floor speech.
	DocTypeSpeech DocType = "speech"
)

// ParseDocType maps a source string onto a DocType.
func ParseDocType(s string) (DocType, error) {
	switch DocType(s) {
	case DocTypeManifesto, DocTypeSpeech:
		return DocType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDocType, s)
}

// Document is a source record before chunking: one manifesto or one speech
// with its filtering metadata already normalized.
type Document struct {
	Type     DocType
	Party    Party
	Date     int64 // YYYYMMDD
	SourceID string
	Text     string
}

// Chunk is the atomic unit of storage and retrieval: a bounded text segment
// derived from a Document. Metadata is copied verbatim from the parent
// record. Chunks are immutable once stored; only a full-collection reindex
// replaces their vectors.
type Chunk struct {
	Id         ID
	Type       DocType
	Party      Party
	Date       int64 // YYYYMMDD
	SourceID   string
	Seq        int // position within the parent document
	Content    string
	Vector     []float32 // unit-length embedding (populated at ingestion)
	InsertedAt time.Time
}

// ChunkID derives the deterministic ID for a chunk from its parent record
// identity, its position, and its content.
func ChunkID(doctype DocType, party Party, date int64, sourceID string, seq int, content string) ID {
	return IDFromContent(fmt.Sprintf("%s|%s|%d|%s|%d|%s", doctype, party, date, sourceID, seq, content))
}

// ScoredChunk is one retrieval hit. Score is cosine similarity; higher is
// more similar. This is the single score convention used throughout.
type ScoredChunk struct {
	Chunk *Chunk
	Score float32
}

// AlignmentLabel is the qualitative verdict on how well a party's speeches
// match its manifesto, from weakest to strongest alignment.
type AlignmentLabel string

const (
	LabelNoAlignment   AlignmentLabel = "Does not align well with manifesto"
	LabelPartlyAligned AlignmentLabel = "Aligns partly with manifesto"
	LabelMostlyAligned AlignmentLabel = "Aligns mostly with manifesto"
	LabelWellAligned   AlignmentLabel = "Aligns well with manifesto"
	LabelUnknown       AlignmentLabel = ""
)

// AlignmentLabels lists the allowed labels in ranking order.
var AlignmentLabels = []AlignmentLabel{
	LabelNoAlignment,
	LabelPartlyAligned,
	LabelMostlyAligned,
	LabelWellAligned,
}

// NotEnoughData is the user-facing sentinel used in place of a similarity
// value when either retrieved set is empty.
const NotEnoughData = "Not enough data"

// Alignment is the per-party scoring outcome. It is derived per request and
// never persisted. When NotEnoughData is true, ContentSimilarity carries no
// meaning and must not be displayed as a score.
type Alignment struct {
	Party             Party
	ContentSimilarity float64
	NotEnoughData     bool
	Narrative         string
	Label             AlignmentLabel
}

// SimilarityDisplay renders the content similarity for callers, substituting
// the sentinel when the score is undefined.
func (a *Alignment) SimilarityDisplay() string {
	if a.NotEnoughData {
		return NotEnoughData
	}
	return fmt.Sprintf("%.1f%%", a.ContentSimilarity*100)
}
