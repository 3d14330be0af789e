package mock

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/practicepreach/preach/core"
)

// MockNarrator is a test double for ai.Narrator.
type MockNarrator struct {
	// NarrateFunc is called by Narrate if set.
	// If nil, uses default canned behavior.
	NarrateFunc func(ctx context.Context, question, grounding string) (string, error)

	callCount atomic.Int64
}

// NewMockNarrator creates a mock narrator with default canned behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{}
}

// Narrate returns a short canned summary referencing the question.
func (m *MockNarrator) Narrate(ctx context.Context, question, grounding string) (string, error) {
	m.callCount.Add(1)

	if m.NarrateFunc != nil {
		return m.NarrateFunc(ctx, question, grounding)
	}

	if strings.TrimSpace(grounding) == "" {
		return "No context was retrieved for this question.", nil
	}
	return "Summary for: " + question, nil
}

// CallCount returns the number of times Narrate was called.
func (m *MockNarrator) CallCount() int {
	return int(m.callCount.Load())
}

// MockClassifier is a test double for ai.AlignmentClassifier.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, returns the fixed Label.
	ClassifyFunc func(ctx context.Context, manifestoTexts, speechTexts string) (string, error)

	// Label is the canned response when ClassifyFunc is nil.
	// Defaults to "Aligns partly with manifesto".
	Label core.AlignmentLabel

	callCount atomic.Int64
}

// NewMockClassifier creates a mock classifier with a fixed canned label.
// Note: Returns concrete type to allow test assertions.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{Label: core.LabelPartlyAligned}
}

// Classify returns the canned label.
func (m *MockClassifier) Classify(ctx context.Context, manifestoTexts, speechTexts string) (string, error) {
	m.callCount.Add(1)

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, manifestoTexts, speechTexts)
	}
	return string(m.Label), nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return int(m.callCount.Load())
}
