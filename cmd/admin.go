package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/auth"
	"github.com/cakeart/cakeart/internal/config"
	"github.com/cakeart/cakeart/internal/content"
)

var (
	adminSave       bool
	adminAuditLimit int
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin account and gallery maintenance",
}

var adminHashCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Prompt for an admin password and print its bcrypt hash",
	Long: `Prompts for the admin password twice and prints the bcrypt hash to put
in admin.password_hash. With --save the hash is written to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := (&promptui.Prompt{
			Label:    "Admin password",
			Mask:     '*',
			Validate: config.ValidatePassword,
		}).Run()
		if err != nil {
			return fmt.Errorf("password: %w", err)
		}
		_, err = (&promptui.Prompt{
			Label: "Repeat password",
			Mask:  '*',
			Validate: func(s string) error {
				if s != password {
					return errors.New("passwords do not match")
				}
				return nil
			},
		}).Run()
		if err != nil {
			return fmt.Errorf("confirm password: %w", err)
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		if !adminSave {
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Admin.PasswordHash = hash
		cfg.Admin.Password = ""
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin.password_hash saved to %s\n", cfgFile)
		return nil
	},
}

var adminResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the gallery working list with the canonical gallery",
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

		canonical := content.Gallery()
		if err := store.Reset(ctx, canonical); err != nil {
			return fmt.Errorf("resetting gallery: %w", err)
		}
		_ = audit.NewStore(database).Log(ctx, audit.Entry{
			Actor:  audit.ActorCLI,
			Action: audit.ActionGalleryReset,
			Detail: fmt.Sprint(len(canonical)),
		})
		fmt.Fprintf(cmd.OutOrStdout(), "gallery reset to %d canonical items\n", len(canonical))
		return nil
	},
}

var adminAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent admin activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := context.Background()
		database, _, err := openGallery(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		entries, err := audit.NewStore(database).Query(ctx, audit.Filter{Limit: adminAuditLimit})
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tACTOR\tACTION\tSUBJECT\tDETAIL")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Timestamp.Format(time.DateTime), e.Actor, e.Action, e.Subject, e.Detail)
		}
		return tw.Flush()
	},
}

func init() {
	adminHashCmd.Flags().BoolVar(&adminSave, "save", false, "write the hash to the config file")
	adminAuditCmd.Flags().IntVarP(&adminAuditLimit, "limit", "n", 20, "number of entries to show")
	adminCmd.AddCommand(adminHashCmd, adminResetCmd, adminAuditCmd)
	rootCmd.AddCommand(adminCmd)
}
