package chunk

import (
	"strings"
	"unicode"
)

// SentenceChunker splits text on sentence boundaries and greedily packs
// consecutive sentences into chunks of at most MaxSize characters. A single
// sentence longer than MaxSize is kept whole, never truncated. When
// Overlap > 0, trailing sentences from the end of one chunk are carried into
// the start of the next, up to Overlap characters.
type SentenceChunker struct {
	MaxSize int
	Overlap int
}

// NewSentenceChunker creates a sentence-safe chunker.
func NewSentenceChunker(maxSize, overlap int) *SentenceChunker {
	if maxSize <= 0 {
		maxSize = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	return &SentenceChunker{MaxSize: maxSize, Overlap: overlap}
}

func (c *SentenceChunker) Chunk(text string) []string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return []string{""}
	}

	var chunks []string
	var current []string
	currentSize := 0

	for _, sentence := range sentences {
		size := len([]rune(sentence))

		if currentSize+size > c.MaxSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))

			if c.Overlap > 0 {
				current, currentSize = trailingSentences(current, c.Overlap)
			} else {
				current, currentSize = nil, 0
			}
		}

		current = append(current, sentence)
		currentSize += size + 1 // account for the joining space
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// trailingSentences returns the suffix of sentences that fits into at most
// limit characters, to be carried over as overlap into the next chunk.
func trailingSentences(sentences []string, limit int) ([]string, int) {
	var carried []string
	size := 0
	for i := len(sentences) - 1; i >= 0; i-- {
		n := len([]rune(sentences[i]))
		if size+n > limit {
			break
		}
		carried = append([]string{sentences[i]}, carried...)
		size += n
	}
	return carried, size
}

// SplitSentences splits text into sentences. A boundary is sentence-final
// punctuation (. ! ?) followed by whitespace and an upper-case letter, by a
// paragraph break, or by the end of the string. Text without any boundary
// comes back as one sentence; whitespace-only text yields none.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string

	flush := func(from, to int) {
		s := strings.TrimSpace(string(runes[from:to]))
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
		default:
			continue
		}

		// Look past the punctuation: count newlines while skipping spaces.
		j := i + 1
		newlines := 0
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			if runes[j] == '\n' {
				newlines++
			}
			j++
		}

		if j >= len(runes) || newlines >= 2 || unicode.IsUpper(runes[j]) {
			flush(start, i+1)
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		flush(start, len(runes))
	}
	return sentences
}
