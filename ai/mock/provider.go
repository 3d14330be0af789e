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


package mock

import "github.com/practicepreach/preach/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock embedder, narrator and classifier instances.
type MockProvider struct {
	embedder   *MockEmbedder
	narrator   *MockNarrator
	classifier *MockClassifier
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockEmbedder()/GetMockNarrator()/GetMockClassifier()
// to access the concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder:   NewMockEmbedder(),
		narrator:   NewMockNarrator(),
		classifier: NewMockClassifier(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock
// services, for full control over the behavior of each one.
func NewMockProviderWithServices(embedder *MockEmbedder, narrator *MockNarrator, classifier *MockClassifier) ai.Provider {
	return &MockProvider{
		embedder:   embedder,
		narrator:   narrator,
		classifier: classifier,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Narrator returns the mock narrator.
func (p *MockProvider) Narrator() ai.Narrator {
	return p.narrator
}

// Classifier returns the mock classifier.
func (p *MockProvider) Classifier() ai.AlignmentClassifier {
	return p.classifier
}

// Close is a no-op for the mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockNarrator returns the underlying mock narrator for test assertions.
func (p *MockProvider) GetMockNarrator() *MockNarrator {
	return p.narrator
}

// GetMockClassifier returns the underlying mock classifier for test assertions.
func (p *MockProvider) GetMockClassifier() *MockClassifier {
	return p.classifier
}
