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


package core

import (
	"fmt"
	"strings"
)

// ValidateDocument validates a normalized source record before chunking.
//
// Validation rules:
//   - Type must be manifesto or speech
//   - Party must be canonical
//   - Date must be a valid YYYYMMDD integer
//   - Text must not be empty
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if _, err := ParseDocType(string(doc.Type)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if !doc.Party.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDocument, ErrUnknownParty, doc.Party)
	}
	if _, err := DateFromInt(doc.Date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyContent)
	}
	return nil
}

// ValidateChunk validates a chunk before it is stored.
//
// Same metadata rules as ValidateDocument. Content may be empty (an empty
// source record still yields one empty chunk to preserve record alignment),
// but the vector must be present because chunks are embedded before storage.
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}
	if _, err := ParseDocType(string(chunk.Type)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}
	if !chunk.Party.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidChunk, ErrUnknownParty, chunk.Party)
	}
	if _, err := DateFromInt(chunk.Date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}
	if len(chunk.Vector) == 0 {
		return fmt.Errorf("%w: missing embedding vector", ErrInvalidChunk)
	}
	return nil
}

// ParseAlignmentLabel reconciles a model response onto one of the four
// allowed labels. Models occasionally wrap the label in quotes or trailing
// punctuation; anything that cannot be resolved to exactly one label is
// rejected.
func ParseAlignmentLabel(s string) (AlignmentLabel, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Trim(cleaned, "\"'`.")
	cleaned = strings.TrimSpace(cleaned)
	for _, label := range AlignmentLabels {
		if strings.EqualFold(cleaned, string(label)) {
			return label, nil
		}
	}
	// Fall back to phrase matching, weakest first so "does not align" is
	// never mistaken for "aligns well".
	lower := strings.ToLower(cleaned)
	switch {
	case strings.Contains(lower, "does not align"):
		return LabelNoAlignment, nil
	case strings.Contains(lower, "partly"):
		return LabelPartlyAligned, nil
	case strings.Contains(lower, "mostly"):
		return LabelMostlyAligned, nil
	case strings.Contains(lower, "aligns well"):
		return LabelWellAligned, nil
	}
	return LabelUnknown, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
}
