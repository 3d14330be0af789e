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


package alignment

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/practicepreach/preach/ai"
	"github.com/practicepreach/preach/core"
	"github.com/practicepreach/preach/retrieval"
	"github.com/practicepreach/preach/storage"
)

// Scorer computes speech-to-manifesto alignment for one party and topic.
//
// Speeches are retrieved over the literal query window. Manifestos are
// retrieved over the window snapped to full legislative-period bounds,
// since a manifesto speaks for its whole Wahlperiode, not just the days
// a speech was given.
type Scorer struct {
	retriever  *retrieval.Retriever
	narrator   ai.Narrator
	classifier ai.AlignmentClassifier
	poolSize   int
	logger     *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer) error

// WithPoolSize sets the worker pool size for multi-party fan-out.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Scorer) error {
		if size < 1 {
			size = 1
		}
		s.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScorer creates a new alignment scorer.
func NewScorer(retriever *retrieval.Retriever, narrator ai.Narrator, classifier ai.AlignmentClassifier, opts ...Option) (*Scorer, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if narrator == nil {
		return nil, ErrNarratorRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	s := &Scorer{
		retriever:  retriever,
		narrator:   narrator,
		classifier: classifier,
		poolSize:   poolSize,
		logger:     slog.Default().With("component", "alignment"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Score computes the alignment between a party's speeches and its
// manifesto on the given topic and window.
func (s *Scorer) Score(ctx context.Context, topic string, party core.Party, start, end time.Time) (*core.Alignment, error) {
	return s.ScoreWithMonitor(ctx, topic, party, start, end, nil)
}

// ScoreWithMonitor computes an alignment with monitoring hooks.
// The monitor receives callbacks at each stage of the scoring process.
func (s *Scorer) ScoreWithMonitor(ctx context.Context, topic string, party core.Party, start, end time.Time, monitor ScoreMonitor) (*core.Alignment, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopScoreMonitor{}
	}

	monitor.Start(topic, party)

	speeches, err := s.retriever.Retrieve(ctx, topic, storage.Filter{
		Type:      core.DocTypeSpeech,
		Party:     party,
		StartDate: core.DateInt(start),
		EndDate:   core.DateInt(end),
	})
	if err != nil {
		return nil, err
	}
	monitor.AfterSpeechRetrieval(speeches)

	// A manifesto covers its whole legislative period
	wpStart, wpEnd, err := core.SnapToPeriodBounds(start, end)
	if err != nil {
		return nil, err
	}

	manifestos, err := s.retriever.Retrieve(ctx, topic, storage.Filter{
		Type:      core.DocTypeManifesto,
		Party:     party,
		StartDate: core.DateInt(wpStart),
		EndDate:   core.DateInt(wpEnd),
	})
	if err != nil {
		return nil, err
	}
	monitor.AfterManifestoRetrieval(manifestos)

	// Never fabricate a score from an empty side
	if len(speeches) == 0 || len(manifestos) == 0 {
		s.logger.Info("not enough data for alignment",
			"party", party, "speeches", len(speeches), "manifestos", len(manifestos))
		result := &core.Alignment{
			Party:         party,
			NotEnoughData: true,
			Label:         core.LabelUnknown,
		}
		monitor.Finish(result)
		return result, nil
	}

	similarity := Cosine(Centroid(chunkVectors(speeches)), Centroid(chunkVectors(manifestos)))
	monitor.AfterSimilarity(similarity)

	speechText := joinContents(speeches)
	manifestoText := joinContents(manifestos)

	narrative, err := s.narrator.Narrate(ctx, topic, speechText)
	if err != nil {
		return nil, err
	}
	monitor.AfterNarrative(narrative)

	rawLabel, err := s.classifier.Classify(ctx, manifestoText, speechText)
	if err != nil {
		return nil, err
	}
	label, err := core.ParseAlignmentLabel(rawLabel)
	if err != nil {
		return nil, err
	}

	result := &core.Alignment{
		Party:             party,
		ContentSimilarity: similarity,
		Narrative:         narrative,
		Label:             label,
	}
	monitor.Finish(result)

	return result, nil
}

// chunkVectors collects the stored vectors of a retrieval set.
func chunkVectors(chunks []*core.ScoredChunk) [][]float32 {
	vectors := make([][]float32, 0, len(chunks))
	for _, sc := range chunks {
		if len(sc.Chunk.Vector) > 0 {
			vectors = append(vectors, sc.Chunk.Vector)
		}
	}
	return vectors
}

// joinContents concatenates chunk contents for prompt grounding.
func joinContents(chunks []*core.ScoredChunk) string {
	parts := make([]string, 0, len(chunks))
	for _, sc := range chunks {
		if sc.Chunk.Content != "" {
			parts = append(parts, sc.Chunk.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
