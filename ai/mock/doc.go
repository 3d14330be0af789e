// Package mock provides test double implementations of the ai service
// interfaces.
//
// The mocks run without external AI services and behave deterministically:
//
//   - MockEmbedder: unit vectors derived from an FNV hash of the text
//   - MockNarrator: canned summaries referencing the question
//   - MockClassifier: a fixed alignment label
//
// Each mock exposes function fields for behavior injection and a CallCount
// accessor for assertions.
package mock
