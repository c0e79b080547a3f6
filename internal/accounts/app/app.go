package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/fluxline/accountd/internal/accounts/http"
	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/internal/accounts/store/drivers/sqlite"
	"github.com/fluxline/accountd/pkg/jwtx"
	"github.com/fluxline/accountd/pkg/slogx"
	"github.com/rs/cors"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the account service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier

	// Services
	tokenService *service.TokenService
	userService  *service.UserService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accountd",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initSigning(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("account service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down account service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("account service stopped")
	return nil
}

// initSigning validates the session secret and builds the token signer and
// verifier. The shipped placeholder secret is fatal outside dev.
func (app *Application) initSigning() error {
	if app.cfg.SessionSecret == InsecureSecretPlaceholder {
		if app.cfg.Env != "dev" {
			return errors.New("SESSION_SECRET is the insecure placeholder; set a real secret")
		}
		app.logger.Warn("SESSION_SECRET is the insecure placeholder; tokens are forgeable")
	}

	signer, err := jwtx.NewSigner(app.cfg.SessionSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	verifier, err := jwtx.NewVerifier(app.cfg.SessionSecret, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.userService = &service.UserService{
		Store: app.db,
		Roles: app.cfg.Roles,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.signer,
		app.cfg.Roles,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	// Browser clients live on a different origin, so CORS wraps the router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{app.cfg.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 3 * time.Second,
	}
}
