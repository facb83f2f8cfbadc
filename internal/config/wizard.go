package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/cakeart/cakeart/internal/auth"
)

// minPasswordLength is the shortest admin password the wizard accepts.
const minPasswordLength = 8

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it. The admin password is stored only as a bcrypt hash;
// an API key, if given, goes to the keyring rather than the config.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cakeart! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Listen port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Directory holding gallery images",
		Default: cfg.AssetsDir,
	}
	if cfg.AssetsDir, err = assetsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	// 3. Idea provider.
	providerPrompt := promptui.Select{
		Label: "Select idea-generation provider",
		Items: []string{string(ProviderGoogle), string(ProviderOpenAI)},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Ideas.Provider = ProviderType(providerStr)
	if cfg.Ideas.Provider == ProviderOpenAI {
		cfg.Ideas.Model = "gpt-4o-mini"
	}

	// 4. API key, unless already in the environment.
	envVar := APIKeyEnvVar(cfg.Ideas.Provider)
	if os.Getenv(envVar) == "" {
		keyPrompt := promptui.Prompt{
			Label: fmt.Sprintf("%s API key (blank to set %s later)", providerStr, envVar),
			Mask:  '*',
		}
		key, err := keyPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("api key: %w", err)
		}
		if key = strings.TrimSpace(key); key != "" {
			if err := auth.StoreAPIKey(providerStr, key); err != nil {
				return nil, fmt.Errorf("storing api key: %w", err)
			}
		}
	}

	// 5. Admin password.
	passPrompt := promptui.Prompt{
		Label:    "Admin password",
		Mask:     '*',
		Validate: ValidatePassword,
	}
	password, err := passPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("admin password: %w", err)
	}
	if cfg.Admin.PasswordHash, err = auth.HashPassword(password); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > 65535 {
		return errors.New("port must be a number between 1 and 65535")
	}
	return nil
}

// ValidatePassword rejects admin passwords shorter than eight characters.
func ValidatePassword(s string) error {
	if len([]rune(s)) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
