package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/prompt"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	optionCount = 4
	// batchParallelism bounds concurrent LLM calls of one batch request.
	batchParallelism = 4
)

type MCQService interface {
	ContextOptions(ctx context.Context, req dto.ContextOptionsRequest) (*dto.OptionsResponse, error)
	SimilarOptions(ctx context.Context, req dto.ContextOptionsRequest) (*dto.OptionsResponse, error)
	QuranicOptions(ctx context.Context, distractorType string, req dto.QuranicOptionsRequest) (*dto.OptionsResponse, error)
	BatchContextOptions(ctx context.Context, req dto.BatchOptionsRequest) (*dto.BatchOptionsResponse, error)
}

type mcqService struct {
	llm       TextGenerator
	templates *prompt.Templates
}

func NewMCQService(llm TextGenerator, templates *prompt.Templates) MCQService {
	return &mcqService{llm: llm, templates: templates}
}

func (s *mcqService) ContextOptions(ctx context.Context, req dto.ContextOptionsRequest) (*dto.OptionsResponse, error) {
	p, err := s.templates.Context(prompt.Language(req.Language), req.Question, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, p)
}

func (s *mcqService) SimilarOptions(ctx context.Context, req dto.ContextOptionsRequest) (*dto.OptionsResponse, error) {
	p, err := s.templates.Similar(prompt.Language(req.Language), req.Question, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, p)
}

func (s *mcqService) QuranicOptions(ctx context.Context, distractorType string, req dto.QuranicOptionsRequest) (*dto.OptionsResponse, error) {
	dt, ok := prompt.ParseDistractorType(distractorType)
	if !ok {
		return nil, apperror.Validation("unknown distractor type %q", distractorType)
	}
	p, err := s.templates.Quranic(dt, req.Question, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, p)
}

// BatchContextOptions generates options for every item concurrently. A failing
// item is reported in its own result and does not fail the batch.
func (s *mcqService) BatchContextOptions(ctx context.Context, req dto.BatchOptionsRequest) (*dto.BatchOptionsResponse, error) {
	results := make([]dto.BatchOptionsResult, len(req.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, item := range req.Items {
		g.Go(func() error {
			results[i].Index = i
			resp, err := s.ContextOptions(gctx, item)
			if err != nil {
				_, msg := apperror.ResponseFor(err)
				log.Warn().Err(err).Int("index", i).Msg("Batch item failed")
				results[i].Error = msg
				return nil
			}
			results[i].Responses = resp.Responses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperror.Upstream(err, "batch generation cancelled")
	}
	return &dto.BatchOptionsResponse{Results: results}, nil
}

func (s *mcqService) generate(ctx context.Context, p string) (*dto.OptionsResponse, error) {
	raw, err := s.llm.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	options, err := ParseOptions(raw)
	if err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Failed to parse MCQ options from LLM output")
		return nil, err
	}
	return &dto.OptionsResponse{Responses: options}, nil
}

// ParseOptions reads {"responses": [...]} out of LLM text, tolerating a
// surrounding markdown code fence. Exactly four options are required; any other
// count is a validation error that names the count.
func ParseOptions(raw string) ([]string, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, apperror.Upstream(errors.New("empty output"), "LLM returned no options")
	}

	var out dto.OptionsResponse
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, apperror.Upstream(err, "failed to parse LLM options")
	}
	if len(out.Responses) != optionCount {
		return nil, apperror.Validation("expected exactly %d options, got %d", optionCount, len(out.Responses))
	}
	return out.Responses, nil
}

func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimPrefix(s, "JSON")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
