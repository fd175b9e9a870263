// Package llm is the transport to hosted language models. The screening
// pipeline uses it for the external text classifier, the explanation
// generator and strategy suggestions; none of the scoring logic depends on it.
package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the capability every model backend implements.
type Provider interface {
	// Generate sends a prompt and returns the model output. When req.Schema
	// is set the provider uses its native structured-output mode and the
	// returned Content has been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Every caller in mindcheck sends a
	// single user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the output must conform to.
	// When nil the output is free text.
	Schema *Schema

	MaxTokens int

	// Temperature controls randomness in [0,1]. Zero leaves the provider
	// default in place.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "screening-label".
	Name string

	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the validated JSON object when a schema was requested and
	// the raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the content as trimmed plain text.
func (r *Response) Text() string {
	return strings.TrimSpace(string(r.Content))
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
