package prompt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lshigami/examcraft/config"
	"github.com/lshigami/examcraft/internal/apperror"
	"github.com/rs/zerolog/log"
)

type Language string

const (
	Arabic Language = "arabic"
	Urdu   Language = "urdu"
)

type DistractorType string

const (
	Collection     DistractorType = "collection"
	Diacritic      DistractorType = "diacritic"
	Phonetic       DistractorType = "phonetic"
	Morphological  DistractorType = "morphological"
	Grammatical    DistractorType = "grammatical"
	AlternateVerse DistractorType = "alternate_verse"
	Thematic       DistractorType = "thematic"
	Collocational  DistractorType = "collocational"
)

var DistractorTypes = []DistractorType{
	Collection, Diacritic, Phonetic, Morphological, Grammatical, AlternateVerse, Thematic, Collocational,
}

func ParseDistractorType(s string) (DistractorType, bool) {
	t := DistractorType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range DistractorTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

//go:embed prompts.json
var defaultTemplates []byte

// Templates holds the prompt text for every generation task. Placeholders
// {question} and {correct_answer} are filled in at render time.
type Templates struct {
	ContextByLanguage map[Language]string       `json:"context"`
	SimilarByLanguage map[Language]string       `json:"similar"`
	QuranicByType     map[DistractorType]string `json:"quranic_verse"`
}

// NewTemplates loads templates from PROMPT_TEMPLATE_PATH, falling back to the
// embedded set when the path is empty.
func NewTemplates(cfg *config.Config) (*Templates, error) {
	if cfg.PromptTemplatePath == "" {
		log.Info().Msg("PROMPT_TEMPLATE_PATH not set, using embedded prompt templates")
		return Parse(defaultTemplates)
	}
	raw, err := os.ReadFile(cfg.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template file: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.PromptTemplatePath).Msg("Prompt templates loaded")
	return t, nil
}

func Parse(raw []byte) (*Templates, error) {
	var t Templates
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to parse prompt template JSON: %w", err)
	}
	return &t, nil
}

func (t *Templates) Context(lang Language, question, correctAnswer string) (string, error) {
	tpl, ok := t.ContextByLanguage[lang]
	if !ok || tpl == "" {
		return "", apperror.Validation("language %q is not supported for context options", lang)
	}
	return render(tpl, question, correctAnswer), nil
}

func (t *Templates) Similar(lang Language, question, correctAnswer string) (string, error) {
	tpl, ok := t.SimilarByLanguage[lang]
	if !ok || tpl == "" {
		return "", apperror.Validation("language %q is not supported for similar options", lang)
	}
	return render(tpl, question, correctAnswer), nil
}

func (t *Templates) Quranic(dt DistractorType, question, correctAnswer string) (string, error) {
	tpl, ok := t.QuranicByType[dt]
	if !ok || tpl == "" {
		return "", apperror.Validation("no template for distractor type %q", dt)
	}
	return render(tpl, question, correctAnswer), nil
}

func render(tpl, question, correctAnswer string) string {
	return strings.NewReplacer(
		"{question}", strings.TrimSpace(question),
		"{correct_answer}", strings.TrimSpace(correctAnswer),
	).Replace(tpl)
}
