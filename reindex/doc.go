// Package reindex provides full-collection re-embedding of stored chunks,
// used when switching or upgrading the embedding model.
//
// The Reindexer pages through the whole collection, re-embeds chunk text
// in retried batches and replaces the stored vectors in place. Progress
// is tracked and reported while running.
package reindex
