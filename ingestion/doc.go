// Package ingestion loads the political text corpus into the chunk store.
//
// The Pipeline type manages the ingestion workflow:
//   - Loading tabular corpus records (type, date, id, party, text)
//   - Normalizing dates and party labels to canonical forms
//   - Chunking document text sentence-wise
//   - Embedding and storing chunks in bounded, atomic batches
//
// Ingestion is sequential and runs once at startup. Re-running against a
// populated store would duplicate nothing (chunk IDs are content-based)
// but still costs embedding calls, so callers should check Count first.
package ingestion
