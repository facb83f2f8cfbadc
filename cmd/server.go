package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cakeart/cakeart/internal/audit"
	"github.com/cakeart/cakeart/internal/auth"
	"github.com/cakeart/cakeart/internal/config"
	"github.com/cakeart/cakeart/internal/contact"
	"github.com/cakeart/cakeart/internal/db"
	"github.com/cakeart/cakeart/internal/flow"
	"github.com/cakeart/cakeart/internal/gallery"
	"github.com/cakeart/cakeart/internal/ideas"
	"github.com/cakeart/cakeart/internal/server"
	"github.com/cakeart/cakeart/internal/site"
	"github.com/cakeart/cakeart/internal/tracker"
	"github.com/cakeart/cakeart/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Cake Art web server",
	Long:  `Serves the portfolio site, the admin gallery editor, the contact form, the idea tool and the JSON APIs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serverPort != 0 {
			cfg.Server.Port = serverPort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		database, store, err := openGallery(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		hash, err := auth.ResolveHash(cfg.Admin.PasswordHash, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("admin password: %w", err)
		}
		if cfg.Admin.PasswordHash == "" {
			logger.Warn("using plain admin.password; set admin.password_hash for production")
		}
		sessions, err := auth.NewSessions(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)
		if err != nil {
			return fmt.Errorf("creating sessions: %w", err)
		}

		var ideaSvc *ideas.Service
		if svc, err := createIdeaService(cfg); err != nil {
			logger.Warn("idea tool disabled", zap.Error(err))
		} else {
			ideaSvc = svc
		}

		srv := server.New(server.Config{
			Addr:           cfg.Addr(),
			RequestTimeout: cfg.Server.RequestTimeout,
			CORSOrigins:    cfg.Server.CORSOrigins,
		}, logger)

		if err := registerAllRoutes(srv, cfg, database, store, sessions, hash, ideaSvc); err != nil {
			return err
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("server shutdown", zap.Error(err))
			}
		}()

		logger.Info("cakeart server starting",
			zap.String("version", Version),
			zap.String("addr", cfg.Addr()),
			zap.String("database", database.Path()),
			zap.String("assets", cfg.AssetsDir),
			zap.Bool("ideas", ideaSvc != nil),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires the pages and APIs onto the server.
func registerAllRoutes(srv *server.Server, cfg *config.Config, database *db.DB, store *gallery.Store, sessions *auth.Sessions, hash string, ideaSvc *ideas.Service) error {
	auditStore := audit.NewStore(database)
	messages := contact.NewStore(database)
	gate := auth.NewGate(hash, sessions, auditStore, logger)

	pages, err := web.NewHandler(web.Options{
		Gallery:   store,
		Messages:  messages,
		Gate:      gate,
		Ideas:     ideaSvc,
		Recorder:  auditStore,
		Renderer:  site.NewRenderer(cfg.Site.HighlightStyle),
		Preloader: &flow.Preloader{Duration: cfg.Site.PreloaderDuration},
		Band:      tracker.Band{TopInset: cfg.Site.TrackerTopInset, BottomInset: cfg.Site.TrackerBottomInset},
		AssetsDir: cfg.AssetsDir,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("creating page handler: %w", err)
	}

	// The contact websocket stays open past the request timeout.
	contactHandler := contact.NewHandler(messages, auditStore, logger)
	contact.RegisterRoutes(srv.Router(), contactHandler)

	srv.Routes(func(r chi.Router) {
		pages.RegisterRoutes(r)
		gallery.RegisterRoutes(r, store)
		if ideaSvc != nil {
			ideas.RegisterRoutes(r, ideaSvc)
		}

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(gate.RequireAdmin(nil))
			gallery.RegisterAdminRoutes(r, store, auditStore, logger)
			audit.RegisterRoutes(r, auditStore)
			contact.RegisterAdminRoutes(r, messages)
		})
	})
	return nil
}

func init() {
	serverCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
