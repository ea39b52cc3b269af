package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/novalend/console/internal/console/dataset"
	"github.com/novalend/console/internal/console/domain"
	httpapi "github.com/novalend/console/internal/console/http"
	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/internal/console/store"
	"github.com/novalend/console/internal/console/store/drivers/sqlite"
	"github.com/novalend/console/pkg/cryptox"
	"github.com/novalend/console/pkg/idx"
	"github.com/novalend/console/pkg/jwtx"
	"github.com/novalend/console/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the console service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.EdDSAVerifier
	resolver *dataset.Resolver

	// Services
	sessionService      *service.SessionService
	usersService        *service.UsersService
	mfaService          *service.MFAService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "console",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, err := InitSigner(app.cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifier(signer, app.cfg.Issuer)

	app.initResolver()
	app.initServices()

	if err := app.seedAdmin(context.Background()); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("console starting", "port", app.cfg.Port, "version", BuildVersion)

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

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down console...")

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

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("console stopped")
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

// initResolver builds the dataset source chain: remote endpoint first, then
// the local file fallback. A source with no configured location is skipped.
func (app *Application) initResolver() {
	var sources []dataset.Source

	if app.cfg.DatasetURL != "" {
		sources = append(sources, dataset.NewHTTPSource("remote", app.cfg.DatasetURL))
	}
	if app.cfg.DatasetFile != "" {
		sources = append(sources, dataset.NewFileSource("local", app.cfg.DatasetFile))
	}

	if len(sources) == 0 {
		app.logger.Warn("no dataset sources configured - user endpoints will return 502")
	}

	app.resolver = dataset.NewResolver(app.logger, sources...)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:        app.db,
		Signer:       app.signer,
		Issuer:       app.cfg.Issuer,
		SessionTTL:   app.cfg.SessionTTL,
		ChallengeTTL: app.cfg.MFAChallengeTTL,
	}

	app.usersService = &service.UsersService{
		Resolver: app.resolver,
		Store:    app.db,
		Logger:   app.logger,
	}

	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: "Novalend Console",
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// seedAdmin creates the first admin account when the table is empty. The
// password comes from config or is generated and logged once.
func (app *Application) seedAdmin(ctx context.Context) error {
	empty, err := app.db.Admins().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admin accounts: %w", err)
	}
	if !empty {
		return nil
	}

	password := app.cfg.AdminPassword
	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
		generated = true
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := app.db.Admins().CreateAdmin(ctx, seedAdminAccount(app.cfg.AdminEmail, hash)); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	if generated {
		// One-time credential disclosure; rotate it after first login.
		app.logger.Warn("seed admin created with generated password",
			"email", app.cfg.AdminEmail,
			"password", password,
		)
	} else {
		app.logger.Info("seed admin created", "email", app.cfg.AdminEmail)
	}

	return nil
}

func seedAdminAccount(email, passwordHash string) domain.Admin {
	return domain.Admin{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.SessionService = app.sessionService
	router.UsersService = app.usersService
	router.MFAService = app.mfaService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
