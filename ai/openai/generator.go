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


package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/practicepreach/preach/ai"
	"github.com/practicepreach/preach/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// labelAttempts bounds the retries when the model strays from the closed
// label set.
const labelAttempts = 3

// timeoutFunc wraps a context with the configured per-call deadline.
type timeoutFunc func(ctx context.Context) (context.Context, context.CancelFunc)

func newTimeoutFunc(d time.Duration) timeoutFunc {
	return func(ctx context.Context) (context.Context, context.CancelFunc) {
		if d <= 0 {
			return ctx, func() {}
		}
		return context.WithTimeout(ctx, d)
	}
}

// Generator implements ai.Narrator and ai.AlignmentClassifier using
// OpenAI-compatible chat APIs.
type Generator struct {
	client  llms.Model
	timeout timeoutFunc
	logger  *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:  client,
		timeout: newTimeoutFunc(config.RequestTimeout),
		logger:  slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewNarrator creates a narrative generator using the provided configuration.
//
// Returns ai.Narrator interface to enforce abstraction.
func NewNarrator(config *ai.Config) (ai.Narrator, error) {
	return newGenerator(config)
}

// NewClassifier creates an alignment classifier using the provided
// configuration.
//
// Returns ai.AlignmentClassifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.AlignmentClassifier, error) {
	return newGenerator(config)
}

// Narrate answers the question using only the retrieved grounding text.
func (g *Generator) Narrate(ctx context.Context, question, grounding string) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(narrativeSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(narrativeUserPromptFormat, grounding, question))},
		},
	}

	ctx, cancel := g.timeout(ctx)
	defer cancel()

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		g.logger.Error("failed to generate narrative", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		g.logger.Debug("no choices returned from model")
		return "", errors.New("model returned no choices")
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}

// Classify compares manifesto excerpts with parliamentary speeches and
// returns one of the four allowed alignment labels. Responses outside the
// label set are retried a few times before the call fails.
func (g *Generator) Classify(ctx context.Context, manifestoTexts, speechTexts string) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(alignmentSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(alignmentUserPromptFormat, manifestoTexts, speechTexts))},
		},
	}

	var lastErr error
	for attempt := 0; attempt < labelAttempts; attempt++ {
		callCtx, cancel := g.timeout(ctx)
		response, err := g.client.GenerateContent(callCtx, content, llms.WithTemperature(0.0))
		cancel()
		if err != nil {
			g.logger.Error("failed to generate alignment label", "attempt", attempt+1, "err", err)
			return "", err
		}
		if len(response.Choices) < 1 {
			return "", errors.New("model returned no choices")
		}

		raw := strings.TrimSpace(response.Choices[0].Content)
		label, err := core.ParseAlignmentLabel(raw)
		if err != nil {
			lastErr = err
			g.logger.Warn("model strayed from the label set",
				"attempt", attempt+1,
				"response", raw)
			continue
		}
		return string(label), nil
	}

	g.logger.Error("failed to obtain a valid alignment label after retries", "err", lastErr)
	return "", lastErr
}
