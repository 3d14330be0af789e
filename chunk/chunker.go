package chunk

// Chunker splits text into ordered, bounded segments. Implementations must
// return at least one chunk for any input: callers rely on a 1..N mapping
// from source records to chunks, so empty input yields a single empty chunk
// rather than zero chunks.
type Chunker interface {
	Chunk(text string) []string
}

// WindowChunker cuts the text into fixed-size character windows, carrying
// Overlap characters from the end of each window into the next. Sizes are
// measured in runes so multi-byte German text is never cut mid-character.
type WindowChunker struct {
	Size    int
	Overlap int
}

// NewWindowChunker creates a generic bounded-window chunker.
func NewWindowChunker(size, overlap int) *WindowChunker {
	if size <= 0 {
		size = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	return &WindowChunker{Size: size, Overlap: overlap}
}

func (c *WindowChunker) Chunk(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}
	if len(runes) <= c.Size {
		return []string{text}
	}

	step := c.Size - c.Overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + c.Size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
