package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/gallery"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the gallery working list as a source snippet",
	Long: `Prints the current gallery working list in the chosen format:
"go" renders a content.GalleryItem slice literal, "json" renders the
TypeScript constant used by the original site data file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := gallery.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		database, store, err := openGallery(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		items, err := store.List(ctx)
		if err != nil {
			return fmt.Errorf("listing gallery: %w", err)
		}
		snippet, err := gallery.Export(items, f)
		if err != nil {
			return err
		}

		_ = audit.NewStore(database).Log(ctx, audit.Entry{
			Actor:  audit.ActorCLI,
			Action: audit.ActionGalleryExported,
			Detail: string(f),
		})
		fmt.Fprint(os.Stdout, snippet)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "go", "snippet format: go or json")
	rootCmd.AddCommand(exportCmd)
}
