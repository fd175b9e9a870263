package guidance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/scoring"
)

// Lookup fetches recommendations for a verdict.
type Lookup interface {
	Lookup(ctx context.Context, cond scoring.Condition) (*Recommendations, error)
}

// CatalogLookup serves recommendations straight from a Catalog.
type CatalogLookup struct {
	Catalog *Catalog
}

func (l CatalogLookup) Lookup(_ context.Context, cond scoring.Condition) (*Recommendations, error) {
	return l.Catalog.Recommendations(cond), nil
}

// LLMLookup asks a language model for practices. Links are never generated;
// they always come from the catalog.
type LLMLookup struct {
	provider llm.Provider
	catalog  *Catalog
}

func NewLLMLookup(provider llm.Provider, catalog *Catalog) *LLMLookup {
	return &LLMLookup{provider: provider, catalog: catalog}
}

// StrategiesSchema is the structured answer LLMLookup asks for.
var StrategiesSchema = &llm.Schema{
	Name:        "daily-practices",
	Description: "Short, practical self-help practices",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strategies": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    10,
				"description": "One practice per entry, imperative mood, under 20 words",
			},
		},
		"required":             []any{"strategies"},
		"additionalProperties": false,
	},
}

type strategiesOutput struct {
	Strategies []string `json:"strategies"`
}

func (l *LLMLookup) Lookup(ctx context.Context, cond scoring.Condition) (*Recommendations, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeStrategies)

	var prompt bytes.Buffer
	err := strategiesTemplate.Execute(&prompt, struct {
		Condition scoring.Condition
		Topics    []string
	}{cond, l.catalog.Topics(cond)})
	if err != nil {
		return nil, fmt.Errorf("build strategies prompt: %w", err)
	}

	resp, err := l.provider.Generate(ctx, llm.Request{
		System:      strategiesSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt.String()}},
		Schema:      StrategiesSchema,
		MaxTokens:   400,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("generate strategies: %w", err)
	}

	var out strategiesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse strategies: %w", err)
	}

	strategies := make([]string, 0, len(out.Strategies))
	for _, s := range out.Strategies {
		if s = strings.TrimSpace(s); s != "" {
			strategies = append(strategies, s)
		}
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("generate strategies: no usable entries")
	}

	return &Recommendations{Strategies: strategies, Resources: l.catalog.Resources(cond)}, nil
}

const strategiesSystemPrompt = `You suggest evidence-based daily self-help practices after a mental-health self-screening. Suggest practices only: no diagnoses, no medication advice, no links.`

var strategiesTemplate = template.Must(template.New("strategies").Parse(
	`Screening result: {{.Condition}}
Focus on: {{range $i, $t := .Topics}}{{if $i}}, {{end}}{{$t}}{{end}}

List practical practices that may help.`))
