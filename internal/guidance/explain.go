package guidance

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/scoring"
)

// Explainer describes a verdict in plain, supportive language.
type Explainer interface {
	Explain(ctx context.Context, cond scoring.Condition) (string, error)
}

// LLMExplainer asks a language model for the explanation.
type LLMExplainer struct {
	provider  llm.Provider
	maxTokens int
}

func NewLLMExplainer(provider llm.Provider) *LLMExplainer {
	return &LLMExplainer{provider: provider, maxTokens: 300}
}

func (e *LLMExplainer) Explain(ctx context.Context, cond scoring.Condition) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplain)

	var prompt bytes.Buffer
	if err := explainTemplate.Execute(&prompt, cond); err != nil {
		return "", fmt.Errorf("build explanation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      explainSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt.String()}},
		MaxTokens:   e.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("generate explanation: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("generate explanation: empty response")
	}
	return text, nil
}

const explainSystemPrompt = `You write short, warm notes for people who just finished a mental-health self-screening. Never diagnose. Keep it under 120 words. Plain text only.`

var explainTemplate = template.Must(template.New("explain").Parse(
	`Based on a mental health screening, someone showed signs of {{.}}. Provide a brief, supportive explanation of what this might mean and gentle advice on next steps. Be compassionate but not alarming.`))

// StaticExplainer answers from built-in text and never fails.
type StaticExplainer struct{}

func (StaticExplainer) Explain(_ context.Context, cond scoring.Condition) (string, error) {
	return FallbackExplanation(cond), nil
}

var fallbackExplanations = map[scoring.Condition]string{
	scoring.Normal: "Your answers don't point to any specific area of concern right now. " +
		"Looking after sleep, movement and the people around you helps keep it that way.",
	scoring.Depression: "Your answers suggest you may be going through a period of low mood or low energy. " +
		"This is common and it is treatable. Talking with a doctor or counselor is a good next step.",
	scoring.Anxiety: "Your answers suggest worry or nervousness is taking up a lot of your days. " +
		"Many people find relief through breathing practices, routine and talking with a professional.",
	scoring.Bipolar: "Your answers mention changes in energy, mood or sleep that can come in waves. " +
		"A professional can help you understand these patterns and what steadies them.",
	scoring.PersonalityDisorder: "Your answers point to strong emotions and strain in relationships. " +
		"Skills for emotional regulation can be learned, and a therapist can guide you through them.",
	scoring.OCD: "Your answers mention intrusive thoughts or urges to repeat things. " +
		"These patterns respond well to specific therapies, so it is worth raising them with a professional.",
	scoring.Stress: "Your answers suggest you are carrying a lot of pressure at the moment. " +
		"Small breaks, boundaries and support from others can lighten the load.",
	scoring.Suicidal: "Your answers mention thoughts of self-harm. You deserve support right now. " +
		"Please reach out to a crisis line or someone you trust today, and consider speaking with a professional.",
}

// FallbackExplanation returns the built-in explanation for cond.
func FallbackExplanation(cond scoring.Condition) string {
	if s, ok := fallbackExplanations[cond]; ok {
		return s
	}
	return fallbackExplanations[scoring.Normal]
}
