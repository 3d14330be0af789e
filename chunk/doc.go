// Package chunk splits long documents into bounded, overlapping segments
// for embedding and retrieval.
//
// Two interchangeable strategies are provided:
//   - SentenceChunker packs whole sentences into size-bounded chunks and
//     never splits mid-sentence.
//   - WindowChunker cuts fixed-size character windows with overlap, for
//     free-form text where sentence detection is not wanted.
package chunk
