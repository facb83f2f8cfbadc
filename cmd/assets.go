package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cakeart/cakeart/internal/assets"
	"github.com/cakeart/cakeart/internal/progress"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check gallery images against the assets directory",
}

var assetsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report gallery items whose image is missing from the assets directory",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			return err
		}
		report, err := assets.Verify(cfg.AssetsDir, items, progress.New(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "checked %d items in %s\n", report.Checked, cfg.AssetsDir)
		for _, src := range report.Remote {
			fmt.Fprintf(out, "  remote  %s\n", src)
		}
		for _, src := range report.Missing {
			fmt.Fprintf(out, "  missing %s\n", src)
		}
		if !report.OK() {
			return fmt.Errorf("%d gallery images missing", len(report.Missing))
		}
		return nil
	},
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List images in the assets directory that no gallery item references",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			return err
		}
		unused, err := assets.Unreferenced(cfg.AssetsDir, items)
		if err != nil {
			return err
		}
		for _, p := range unused {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	assetsCmd.AddCommand(assetsVerifyCmd, assetsListCmd)
	rootCmd.AddCommand(assetsCmd)
}
