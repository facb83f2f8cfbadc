package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/cakeart/cakeart/internal/auth"
	"github.com/cakeart/cakeart/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API keys for the idea-generation providers",
	Long: `Store and manage API keys for the idea-generation providers.

Keys are stored in ~/.cakeart/keys.yml and used as a fallback
when the environment variables are not set.`,
}

var authGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Store a Gemini API key",
	Long: `Store your Gemini API key for persistent use.

Get an API key at https://aistudio.google.com/apikey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return storeKey(cmd, config.ProviderGoogle)
	},
}

var authOpenAICmd = &cobra.Command{
	Use:   "openai",
	Short: "Store an OpenAI API key",
	Long: `Store your OpenAI API key for persistent use.

Get your API key at https://platform.openai.com/api-keys`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return storeKey(cmd, config.ProviderOpenAI)
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where each provider key comes from",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout [provider]",
	Short: "Remove stored API keys",
	Long: `Remove the stored key of a provider.

If no provider is specified, removes all stored keys.
Valid providers: google, openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthLogout,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authGoogleCmd, authOpenAICmd, authStatusCmd, authLogoutCmd)
}

func storeKey(cmd *cobra.Command, provider config.ProviderType) error {
	key, err := (&promptui.Prompt{
		Label: fmt.Sprintf("%s API key", provider),
		Mask:  '*',
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("API key is required")
			}
			return nil
		},
	}).Run()
	if err != nil {
		return fmt.Errorf("api key: %w", err)
	}
	if err := auth.StoreAPIKey(string(provider), strings.TrimSpace(key)); err != nil {
		return fmt.Errorf("saving key: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s key stored.\n", provider)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	keys, err := auth.LoadKeyring()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	path, _ := auth.KeyringPath()
	fmt.Fprintf(out, "Keyring: %s\n\n", path)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROVIDER\tSTATUS")
	for _, p := range auth.Providers() {
		status := "not configured"
		switch {
		case auth.KeyFromEnv(p) != "":
			status = "configured (env var)"
		case keys[p] != "":
			status = "configured (stored)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", p, status)
	}
	return tw.Flush()
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	var provider string
	if len(args) == 1 {
		provider = args[0]
	}
	if err := auth.RemoveAPIKey(provider); err != nil {
		return err
	}
	if provider == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "All stored keys removed.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s key removed.\n", provider)
	}
	return nil
}
