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


// Package alignment compares a party's parliamentary speeches against
// its manifesto on a topic.
//
// The Scorer retrieves both sets through the filtered retriever, then
// derives three outputs:
//
//   - a quantitative score: cosine similarity between the centroids of
//     the two retrieval sets (higher = more similar)
//   - a grounded narrative answering the topic from the speeches
//   - one of four qualitative alignment labels from the classifier
//
// Speeches are retrieved over the literal query window; manifestos over
// the window snapped to full legislative-period (Wahlperiode) bounds.
// When either retrieval set is empty the result carries the
// not-enough-data sentinel instead of a fabricated score.
//
// ScoreParties fans scoring out across parties on a worker pool with
// per-party failure isolation.
package alignment
