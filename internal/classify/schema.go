package classify

import "github.com/abhisek/mindcheck/internal/llm"

// LabelSchema constrains the model's answer to the classifier universe.
var LabelSchema = &llm.Schema{
	Name:        "screening-label",
	Description: "One screening label for a set of questionnaire answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type":        "string",
				"enum":        labelNames(),
				"description": "The single best-fitting label",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the label (0.0 to 1.0)",
			},
		},
		"required":             []any{"label", "confidence"},
		"additionalProperties": false,
	},
}

func labelNames() []any {
	labels := Labels()
	out := make([]any, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}
