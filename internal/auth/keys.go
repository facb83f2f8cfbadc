package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// keyEnv lists, per provider, the environment variables checked before the
// keyring file, in priority order.
var keyEnv = map[string][]string{
	"google": {"GOOGLE_API_KEY", "GEMINI_API_KEY"},
	"openai": {"OPENAI_API_KEY"},
}

// Providers returns the provider names an API key can be stored for.
func Providers() []string {
	names := make([]string, 0, len(keyEnv))
	for p := range keyEnv {
		names = append(names, p)
	}
	slices.Sort(names)
	return names
}

// Keyring maps provider name to a stored API key.
type Keyring map[string]string

// KeyringPath returns ~/.cakeart/keys.yml.
func KeyringPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".cakeart", "keys.yml"), nil
}

// LoadKeyring reads the keyring. A missing file is an empty keyring.
func LoadKeyring() (Keyring, error) {
	path, err := KeyringPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Keyring{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}
	k := Keyring{}
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return k, nil
}

// Save writes the keyring readable by the owner only.
func (k Keyring) Save() error {
	path, err := KeyringPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating keyring directory: %w", err)
	}
	data, err := yaml.Marshal(k)
	if err != nil {
		return fmt.Errorf("encoding keyring: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing keyring: %w", err)
	}
	return nil
}

// StoreAPIKey saves key for provider, keeping the other keys.
func StoreAPIKey(provider, key string) error {
	if _, ok := keyEnv[provider]; !ok {
		return fmt.Errorf("unknown provider %q", provider)
	}
	k, err := LoadKeyring()
	if err != nil {
		return err
	}
	k[provider] = key
	return k.Save()
}

// RemoveAPIKey deletes the stored key of provider, or every key when
// provider is empty.
func RemoveAPIKey(provider string) error {
	if provider == "" {
		return Keyring{}.Save()
	}
	if _, ok := keyEnv[provider]; !ok {
		return fmt.Errorf("unknown provider %q", provider)
	}
	k, err := LoadKeyring()
	if err != nil {
		return err
	}
	delete(k, provider)
	return k.Save()
}

// KeyFromEnv returns the provider key set in the environment, if any.
func KeyFromEnv(provider string) string {
	for _, name := range keyEnv[provider] {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetAPIKey returns the key for provider from the environment, falling back
// to the keyring. It returns "" when neither has one.
func GetAPIKey(provider string) string {
	if v := KeyFromEnv(provider); v != "" {
		return v
	}
	k, err := LoadKeyring()
	if err != nil {
		return ""
	}
	return k[provider]
}
