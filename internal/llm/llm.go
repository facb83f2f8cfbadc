// Package llm sends chat-style prompts to a hosted model and returns the
// raw text of its answer, optionally constrained to a JSON schema.
package llm

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// Provider is a hosted model backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Role is the speaker of a Message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the prompt.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion call. Zero MaxTokens and Temperature leave
// the provider defaults in place.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	JSONMode    bool

	// Schema constrains the answer to this JSON shape. Implies JSONMode.
	Schema     *jsonschema.Definition
	SchemaName string
}

// Response is the text a provider returned and what it cost.
type Response struct {
	Content      string
	Model        string
	FinishReason string
	Usage
}

// Usage counts the tokens of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// pricing is USD per million tokens.
type pricing struct {
	input, output float64
}

var prices = map[string]pricing{
	DefaultGoogleModel:      {0.30, 2.50},
	"gemini-2.5-flash-lite": {0.10, 0.40},
	"gemini-2.5-pro":        {1.25, 10.00},
	DefaultOpenAIModel:      {0.15, 0.60},
	"gpt-4o":                {2.50, 10.00},
}

// Cost estimates the USD price of u on model. Unknown models cost 0.
func (u Usage) Cost(model string) float64 {
	p, ok := prices[model]
	if !ok {
		return 0
	}
	return (float64(u.InputTokens)*p.input + float64(u.OutputTokens)*p.output) / 1e6
}
