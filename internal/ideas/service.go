// Package ideas asks a generative model for cake concepts in Persian.
package ideas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/llm"
)

// ErrGeneration is the only error callers see. Its message is shown to the
// visitor as is; the cause is logged.
var ErrGeneration = errors.New("متاسفانه در استودیو طراحی مشکلی پیش آمده. لطفا لحظاتی دیگر دوباره تلاش کنید.")

// Idea is one generated cake concept.
type Idea struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Flavors     []string `json:"flavors"`
}

type response struct {
	Ideas []Idea `json:"ideas"`
}

// Service generates cake ideas through an llm.Provider.
type Service struct {
	provider llm.Provider
	model    string
	logger   *zap.Logger
}

// NewService creates a Service. An empty model uses the provider default.
func NewService(provider llm.Provider, model string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, model: model, logger: logger}
}

// Generate sends one request for prompt and returns the parsed ideas.
// Every failure is reported as ErrGeneration.
func (s *Service) Generate(ctx context.Context, prompt string) ([]Idea, error) {
	ideas, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Error("generating cake ideas", zap.Error(err))
		return nil, ErrGeneration
	}
	return ideas, nil
}

func (s *Service) generate(ctx context.Context, prompt string) ([]Idea, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("empty prompt")
	}
	if s.provider == nil {
		return nil, errors.New("no provider configured")
	}

	resp, err := s.provider.Complete(ctx, llm.Request{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemInstruction},
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:     responseSchema,
		SchemaName: "cake_ideas",
	})
	if err != nil {
		return nil, fmt.Errorf("%s completion: %w", s.provider.Name(), err)
	}

	s.logger.Debug("cake ideas generated",
		zap.String("provider", s.provider.Name()),
		zap.String("model", resp.Model),
		zap.Int("input_tokens", resp.InputTokens),
		zap.Int("output_tokens", resp.OutputTokens),
		zap.Float64("estimated_cost_usd", resp.Usage.Cost(resp.Model)),
	)

	return parse(resp.Content)
}

// parse decodes and checks a provider response.
func parse(content string) ([]Idea, error) {
	var r response
	if err := json.Unmarshal([]byte(stripFence(content)), &r); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if len(r.Ideas) == 0 {
		return nil, errors.New("response contained no ideas")
	}
	for i, idea := range r.Ideas {
		if strings.TrimSpace(idea.Name) == "" || strings.TrimSpace(idea.Description) == "" {
			return nil, fmt.Errorf("idea %d is missing name or description", i)
		}
		if len(idea.Flavors) == 0 {
			return nil, fmt.Errorf("idea %d has no flavors", i)
		}
	}
	return r.Ideas, nil
}

// stripFence removes a ```json fence some models wrap JSON output in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
