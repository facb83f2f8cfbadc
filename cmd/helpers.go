package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/config"
	"github.com/cakeart/cakeart/internal/content"
	"github.com/cakeart/cakeart/internal/db"
	"github.com/cakeart/cakeart/internal/gallery"
	"github.com/cakeart/cakeart/internal/ideas"
	"github.com/cakeart/cakeart/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cakeart init` to create a config file", err)
	}
	return cfg, nil
}

// openGallery opens the database and seeds the working list from the
// canonical gallery on first use.
func openGallery(ctx context.Context, cfg *config.Config) (*db.DB, *gallery.Store, error) {
	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	store := gallery.NewStore(database)
	seeded, err := store.Seed(ctx, content.Gallery())
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("seeding gallery: %w", err)
	}
	if seeded {
		logger.Info("seeded gallery working list", zap.Int("items", len(content.Gallery())))
	}
	return database, store, nil
}

// createIdeaService builds the idea service from config, wrapping the
// provider in the configured rate limit.
func createIdeaService(cfg *config.Config) (*ideas.Service, error) {
	provider, err := llm.NewProvider(string(cfg.Ideas.Provider), cfg.Ideas.Model)
	if err != nil {
		return nil, err
	}
	provider = llm.Throttle(provider, cfg.Ideas.RequestsPerMinute)
	return ideas.NewService(provider, cfg.Ideas.Model, logger), nil
}
