package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".cakeart.yml"

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore: CAKEART_ADMIN__PASSWORD_HASH -> admin.password_hash.
const EnvPrefix = "CAKEART_"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Database:  ".cakeart/cakeart.db",
		AssetsDir: "assets",
		Admin: AdminConfig{
			SessionTTL: 12 * time.Hour,
		},
		Ideas: IdeasConfig{
			Provider:          ProviderGoogle,
			Model:             "gemini-2.5-flash",
			RequestsPerMinute: 10,
		},
		Site: SiteConfig{
			PreloaderDuration:  2500 * time.Millisecond,
			HighlightStyle:     "github",
			TrackerTopInset:    0.30,
			TrackerBottomInset: 0.30,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CAKEART_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CAKEART_SERVER__PORT -> server.port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGoogle: true,
	ProviderOpenAI: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server timeouts must be non-negative")
	}

	if c.Database == "" {
		return fmt.Errorf("database is required")
	}

	if c.Admin.PasswordHash == "" && c.Admin.Password == "" {
		return fmt.Errorf("admin.password_hash is required (run `cakeart admin hash-password`)")
	}
	if c.Admin.SessionTTL < 0 {
		return fmt.Errorf("admin.session_ttl must be non-negative")
	}

	if c.Ideas.Provider != "" && !validProviders[c.Ideas.Provider] {
		return fmt.Errorf("invalid ideas.provider %q: must be one of google, openai", c.Ideas.Provider)
	}
	if c.Ideas.RequestsPerMinute < 0 {
		return fmt.Errorf("ideas.requests_per_minute must be non-negative")
	}

	if c.Site.PreloaderDuration < 0 {
		return fmt.Errorf("site.preloader_duration must be non-negative")
	}
	if !validInset(c.Site.TrackerTopInset) || !validInset(c.Site.TrackerBottomInset) ||
		c.Site.TrackerTopInset+c.Site.TrackerBottomInset >= 1 {
		return fmt.Errorf("tracker insets must be in [0,1) and leave part of the viewport")
	}

	return nil
}

func validInset(f float64) bool { return f >= 0 && f < 1 }

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGoogle:
		return "GOOGLE_API_KEY"
	default:
		return ""
	}
}
