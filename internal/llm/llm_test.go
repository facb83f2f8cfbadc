package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

// MockProvider is a test provider that records calls and returns canned responses.
type MockProvider struct {
	mu       sync.Mutex
	Calls    []Request
	Response *Response
	Err      error
	ProvName string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		ProvName: name,
		Response: &Response{
			Content:      "mock response",
			Model:        "mock-model",
			FinishReason: "stop",
			Usage:        Usage{InputTokens: 10, OutputTokens: 20},
		},
	}
}

func (m *MockProvider) Name() string {
	return m.ProvName
}

func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

var ideaSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"ideas": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"name":    {Type: jsonschema.String},
					"flavors": {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
				},
				Required: []string{"name", "flavors"},
			},
		},
	},
	Required: []string{"ideas"},
}

// --- Tests ---

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider("test")
	ctx := context.Background()

	req := Request{
		Model:    "test-model",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}

	resp, err := mock.Complete(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "mock response" {
		t.Errorf("expected 'mock response', got %q", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	for _, p := range []string{"openai", "google"} {
		if _, err := NewProvider(p, "some-model"); err == nil {
			t.Errorf("expected error for provider %q with missing API key", p)
		}
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	if _, err := NewProvider("unknown", "some-model"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFactoryCreatesProviders(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("GOOGLE_API_KEY", "test-key")

	tests := []struct {
		providerType string
		wantName     string
	}{
		{"openai", "openai"},
		{"google", "google"},
		{"", "google"},
	}
	for _, tt := range tests {
		provider, err := NewProvider(tt.providerType, "")
		if err != nil {
			t.Fatalf("NewProvider(%q): %v", tt.providerType, err)
		}
		if provider.Name() != tt.wantName {
			t.Errorf("NewProvider(%q).Name() = %q, want %q", tt.providerType, provider.Name(), tt.wantName)
		}
	}

	p, _ := NewProvider("google", "")
	if gp := p.(*GoogleProvider); gp.model != DefaultGoogleModel {
		t.Errorf("default google model = %q, want %q", gp.model, DefaultGoogleModel)
	}
}

func TestThrottlePassesThrough(t *testing.T) {
	mock := NewMockProvider("test")
	rl := Throttle(mock, 60)

	resp, err := rl.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "mock response" {
		t.Errorf("expected 'mock response', got %q", resp.Content)
	}
	if rl.Name() != "test" {
		t.Errorf("expected name 'test', got %q", rl.Name())
	}
}

func TestThrottleDisabled(t *testing.T) {
	mock := NewMockProvider("test")
	if rl := Throttle(mock, 0); rl != Provider(mock) {
		t.Error("rpm 0 should return the provider unwrapped")
	}
}

func TestThrottleLimitsRequests(t *testing.T) {
	mock := NewMockProvider("test")
	// Allow only 2 requests per minute.
	rl := Throttle(mock, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	req := Request{Messages: []Message{{Role: RoleUser, Content: "hello"}}}

	// First two should succeed immediately.
	for i := 0; i < 2; i++ {
		if _, err := rl.Complete(ctx, req); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
	}

	// Third cannot be served before the context deadline.
	if _, err := rl.Complete(ctx, req); !errors.Is(err, ErrThrottled) {
		t.Errorf("third request err = %v, want ErrThrottled", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want 2", mock.CallCount())
	}
}

func TestUsageCost(t *testing.T) {
	u := Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	if cost := u.Cost(DefaultGoogleModel); cost < 2.79 || cost > 2.81 {
		t.Errorf("gemini cost = $%.2f, want ~$2.80", cost)
	}
	if cost := u.Cost(DefaultOpenAIModel); cost < 0.74 || cost > 0.76 {
		t.Errorf("openai cost = $%.2f, want ~$0.75", cost)
	}
	if cost := (Usage{InputTokens: 1000, OutputTokens: 500}).Cost("unknown-model"); cost != 0 {
		t.Errorf("unknown model cost = %f, want 0", cost)
	}
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(ideaSchema)
	if s.Type != genai.TypeObject {
		t.Fatalf("Type = %q, want OBJECT", s.Type)
	}
	ideas := s.Properties["ideas"]
	if ideas == nil || ideas.Type != genai.TypeArray {
		t.Fatalf("ideas = %+v, want ARRAY", ideas)
	}
	item := ideas.Items
	if item.Type != genai.TypeObject || len(item.Required) != 2 {
		t.Errorf("item = %+v", item)
	}
	if item.Properties["flavors"].Items.Type != genai.TypeString {
		t.Errorf("flavors items type = %q, want STRING", item.Properties["flavors"].Items.Type)
	}
	if toGenaiSchema(nil) != nil {
		t.Error("nil definition should convert to nil")
	}
}

func TestOpenAIProviderSendsSchema(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"c1","object":"chat.completion","model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"{\"ideas\":[]}"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":5,"completion_tokens":7,"total_tokens":12}}`)
	}))
	defer srv.Close()

	p := NewOpenAIProviderWithBaseURL("test-key", "gpt-4o-mini", srv.URL+"/v1")
	resp, err := p.Complete(context.Background(), Request{
		Messages:   []Message{{Role: RoleSystem, Content: "sys"}, {Role: RoleUser, Content: "hi"}},
		Schema:     ideaSchema,
		SchemaName: "cake_ideas",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != `{"ideas":[]}` || resp.InputTokens != 5 || resp.OutputTokens != 7 {
		t.Errorf("resp = %+v", resp)
	}

	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v, want json_schema", format)
	}
}

func TestGoogleProviderSendsSchema(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ideas\":[]}"}]},"finishReason":"STOP"}],
			"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":4,"totalTokenCount":7}}`)
	}))
	defer srv.Close()

	p := NewGoogleProvider("test-key", DefaultGoogleModel).WithBaseURL(srv.URL + "/")
	resp, err := p.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleSystem, Content: "sys"}, {Role: RoleUser, Content: "hi"}},
		Schema:   ideaSchema,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != `{"ideas":[]}` {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.InputTokens != 3 || resp.OutputTokens != 4 {
		t.Errorf("tokens = %d/%d, want 3/4", resp.InputTokens, resp.OutputTokens)
	}

	genCfg, _ := got["generationConfig"].(map[string]any)
	if genCfg["responseMimeType"] != "application/json" {
		t.Errorf("generationConfig = %v, want JSON mime type", genCfg)
	}
	if genCfg["responseSchema"] == nil {
		t.Error("responseSchema missing from request")
	}
	if got["systemInstruction"] == nil {
		t.Error("systemInstruction missing from request")
	}
}

func TestRoles(t *testing.T) {
	if RoleSystem != "system" || RoleUser != "user" || RoleAssistant != "assistant" {
		t.Errorf("unexpected role values: %q %q %q", RoleSystem, RoleUser, RoleAssistant)
	}
}
