package config

import "time"

// ProviderType identifies an idea-generation provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level cakeart configuration, corresponding to .cakeart.yml.
type Config struct {
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Database  string       `yaml:"database" koanf:"database"`
	AssetsDir string       `yaml:"assets_dir" koanf:"assets_dir"`
	Admin     AdminConfig  `yaml:"admin" koanf:"admin"`
	Ideas     IdeasConfig  `yaml:"ideas" koanf:"ideas"`
	Site      SiteConfig   `yaml:"site" koanf:"site"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `yaml:"host" koanf:"host"`
	Port            int           `yaml:"port" koanf:"port"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins" koanf:"cors_origins"`
}

// AdminConfig holds the admin gate settings. PasswordHash is a bcrypt hash;
// Password is a plain fallback for local development and is hashed at startup.
type AdminConfig struct {
	PasswordHash  string        `yaml:"password_hash" koanf:"password_hash"`
	Password      string        `yaml:"password,omitempty" koanf:"password"`
	SessionSecret string        `yaml:"session_secret,omitempty" koanf:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
}

// IdeasConfig selects the idea-generation provider.
type IdeasConfig struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	PreloaderDuration  time.Duration `yaml:"preloader_duration" koanf:"preloader_duration"`
	HighlightStyle     string        `yaml:"highlight_style" koanf:"highlight_style"`
	TrackerTopInset    float64       `yaml:"tracker_top_inset" koanf:"tracker_top_inset"`
	TrackerBottomInset float64       `yaml:"tracker_bottom_inset" koanf:"tracker_bottom_inset"`
}
