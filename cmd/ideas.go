package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas <prompt>",
	Short: "Generate cake ideas for an occasion, style and colors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := createIdeaService(cfg)
		if err != nil {
			return err
		}

		result, err := svc.Generate(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, idea := range result {
			fmt.Fprintf(out, "%d. %s\n", i+1, idea.Name)
			fmt.Fprintf(out, "   %s\n", idea.Description)
			fmt.Fprintf(out, "   طعم‌ها: %s\n\n", strings.Join(idea.Flavors, "، "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ideasCmd)
}
