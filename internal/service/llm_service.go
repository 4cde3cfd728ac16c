package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/examcraft/config"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// TextGenerator sends one prompt to the LLM and returns the text of the first
// candidate.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func NewGeminiGenerator(lc fx.Lifecycle, cfg *config.Config) (TextGenerator, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Option generation will be non-functional.")
		return &geminiGenerator{}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetCandidateCount(cfg.Gemini.CandidateCount)
	model.SetTemperature(cfg.Gemini.Temperature)
	log.Info().Str("model", cfg.Gemini.Model).Float32("temperature", cfg.Gemini.Temperature).Msg("Gemini client ready")
	return &geminiGenerator{model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.model == nil {
		return "", apperror.Upstream(errors.New("gemini client not initialized"), "LLM service is unavailable")
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", apperror.Upstream(err, "LLM API error")
	}
	return firstCandidateText(resp)
}

// firstCandidateText extracts candidates[0].content.parts[0] as text.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", apperror.Upstream(errors.New("no candidates"), "LLM returned an empty response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", apperror.Upstream(errors.New("no content parts"), "LLM returned an empty response")
	}
	text, ok := content.Parts[0].(genai.Text)
	if !ok {
		return "", apperror.Upstream(fmt.Errorf("unexpected part type %T", content.Parts[0]), "LLM returned no text")
	}
	return string(text), nil
}
