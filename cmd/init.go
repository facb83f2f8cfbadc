package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cakeart/cakeart/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a site config with an interactive wizard",
	Long: `Asks for the port, the gallery assets directory, the idea provider and the
admin password, then writes them to the config file (.cakeart.yml by default).
An existing file is kept unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkConfigWritable(cfgFile, initForce); err != nil {
			return err
		}
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		printNextSteps(cmd.OutOrStdout(), cfgFile, cfg)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// checkConfigWritable refuses to replace an existing config unless forced.
func checkConfigWritable(path string, force bool) error {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return err
	case force:
		return nil
	default:
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
}

func printNextSteps(w io.Writer, path string, cfg *config.Config) {
	fmt.Fprintf(w, "\nWrote %s.\n", path)
	fmt.Fprintf(w, "  check images:   cakeart assets verify --config %s\n", path)
	fmt.Fprintf(w, "  start the site: cakeart server --config %s\n", path)
	fmt.Fprintf(w, "  then open:      http://localhost:%d\n", cfg.Server.Port)
}
