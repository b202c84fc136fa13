// Package feedback produces the one-shot scored report at interview
// completion.
package feedback

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"voicehire/internal/llm"
	"voicehire/internal/models"
	"voicehire/internal/prompts"
	"voicehire/internal/utils"
)

// Generator sends a flattened transcript to the text-generation provider
// and parses a structured scoring result out of its output.
type Generator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewGenerator(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Generator {
	return &Generator{
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// Generate never fails: a provider error or malformed output degrades to
// the deterministic fallback object, which is itself a valid terminal
// result. It is the caller's job not to invoke this again once feedback
// is stored.
func (g *Generator) Generate(ctx context.Context, transcript []models.TranscriptEntry) *models.Feedback {
	system, user, err := g.prompts.Build("feedback", map[string]string{
		"Transcript": FlattenTranscript(transcript),
	})
	if err != nil {
		g.logger.Error("Failed to build feedback prompt", zap.Error(err))
		return models.FallbackFeedback()
	}

	raw, err := g.provider.GenerateText(ctx, system, user, &llm.GenerateOptions{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		g.logger.Error("Feedback generation provider error", zap.Error(err))
		return models.FallbackFeedback()
	}

	cleaned := utils.CleanJSONString(raw)

	var result models.Feedback
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		g.logger.Error("Failed to parse feedback JSON",
			zap.Error(err),
			zap.String("raw", cleaned))
		return models.FallbackFeedback()
	}

	return &result
}

// FlattenTranscript renders the transcript as "SPEAKER: text" lines for
// the provider payload.
func FlattenTranscript(transcript []models.TranscriptEntry) string {
	lines := make([]string, 0, len(transcript))
	for _, entry := range transcript {
		lines = append(lines, string(entry.Speaker)+": "+entry.Text)
	}
	return strings.Join(lines, "\n")
}
