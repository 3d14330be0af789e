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


// Package ai provides abstractions for the AI services used by the
// retrieval and alignment core.
//
// Three interfaces cover the external model capabilities:
//
//   - Embedder: maps text onto dense vectors for similarity search
//   - Narrator: answers a question grounded in retrieved context
//   - AlignmentClassifier: labels how well speeches align with a manifesto
//
// Provider aggregates all three for initialization and lifecycle
// management. Providers are explicitly constructed and injected into their
// consumers; there are no ambient singletons, which keeps test doubles
// trivial to wire.
//
// # Implementation Packages
//
//   - ai/openai: production implementation over OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles without external dependencies
//
// Public constructors in ai/openai return interface types to keep callers
// decoupled from langchaingo; the mock constructors return concrete types so
// tests can inject behavior and assert call counts.
package ai
