package llm

import (
	"fmt"

	"github.com/cakeart/cakeart/internal/auth"
)

// Default models per provider.
const (
	DefaultGoogleModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// NewProvider builds the named provider ("google" when empty) with its key
// from the environment or the keyring. An empty model picks the default.
func NewProvider(name, model string) (Provider, error) {
	if name == "" {
		name = "google"
	}
	key := auth.GetAPIKey(name)

	switch name {
	case "google":
		if key == "" {
			return nil, errNoKey(name)
		}
		if model == "" {
			model = DefaultGoogleModel
		}
		return NewGoogleProvider(key, model), nil
	case "openai":
		if key == "" {
			return nil, errNoKey(name)
		}
		if model == "" {
			model = DefaultOpenAIModel
		}
		return NewOpenAIProvider(key, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", name)
	}
}

func errNoKey(provider string) error {
	return fmt.Errorf("no %s API key: set it in the environment or run `cakeart auth %s`", provider, provider)
}
