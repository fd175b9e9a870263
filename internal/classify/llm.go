package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/scoring"
)

// LLMConfig tunes the classification request.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
	// MinConfidence discards verdicts the model itself is unsure about.
	// Zero accepts every verdict.
	MinConfidence float64
}

func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   128,
		Temperature: 0,
	}
}

// LLMClassifier asks a language model for a structured label.
type LLMClassifier struct {
	provider llm.Provider
	cfg      LLMConfig
}

func NewLLMClassifier(provider llm.Provider, cfg LLMConfig) *LLMClassifier {
	return &LLMClassifier{provider: provider, cfg: cfg}
}

type labelOutput struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classify returns the model's label for text. Every failure, including a
// label the schema let through but the universe does not know, wraps
// ErrUnavailable.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (scoring.Condition, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeClassify)

	msg, err := buildClassifyMessage(text)
	if err != nil {
		return "", fmt.Errorf("%w: build prompt: %v", ErrUnavailable, err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      classifySystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      LabelSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var out labelOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("%w: parse label: %v", ErrUnavailable, err)
	}

	label, err := scoring.ParseCondition(out.Label)
	if err != nil || !InUniverse(label) {
		return "", fmt.Errorf("%w: label %q outside the classifier universe", ErrUnavailable, out.Label)
	}
	if out.Confidence < c.cfg.MinConfidence {
		return "", fmt.Errorf("%w: confidence %.2f below %.2f", ErrUnavailable, out.Confidence, c.cfg.MinConfidence)
	}

	return label, nil
}

const classifySystemPrompt = `You are a screening assistant. You receive a person's answers to a mental-health questionnaire, written as "statement: how often" pairs.

Instructions:
- Choose exactly one label from the allowed list that best describes the overall pattern.
- Use "Normal" when no pattern stands out.
- Report a confidence between 0 and 1.
- Do not add any other fields.`

var classifyUserTemplate = template.Must(template.New("classify").Parse(`Questionnaire answers:
{{.}}`))

func buildClassifyMessage(text string) (string, error) {
	var buf bytes.Buffer
	if err := classifyUserTemplate.Execute(&buf, text); err != nil {
		return "", err
	}
	return buf.String(), nil
}
