package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple texts in a batch.
	// The returned slice matches the order of the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Narrator answers a question grounded in retrieved context.
// Implementations must be thread-safe for concurrent use.
type Narrator interface {
	// Narrate answers the question using only the given grounding text,
	// in at most seven sentences with key terms highlighted.
	Narrate(ctx context.Context, question, grounding string) (string, error)
}

// AlignmentClassifier compares manifesto excerpts against parliamentary
// speeches and returns exactly one of the four allowed alignment labels.
// Implementations must be thread-safe for concurrent use.
type AlignmentClassifier interface {
	// Classify returns the raw label string chosen by the model. Callers
	// reconcile it onto the closed label set.
	Classify(ctx context.Context, manifestoTexts, speechTexts string) (string, error)
}

// Provider aggregates the AI services for convenient initialization and
// lifecycle management. A provider creates and owns its Embedder, Narrator
// and AlignmentClassifier, ensuring they share configuration. Providers are
// constructed explicitly and passed by handle; nothing in this module keeps
// process-wide AI state.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Narrator returns the narrative generation service.
	Narrator() Narrator

	// Classifier returns the alignment classification service.
	Classifier() AlignmentClassifier

	// Close releases resources held by the provider and its services.
	Close() error
}
