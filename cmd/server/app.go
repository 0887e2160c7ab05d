package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/platform/email"
	"github.com/tasknest/tasknest-api/internal/platform/imaging"
	"github.com/tasknest/tasknest-api/internal/platform/postgres"
	"github.com/tasknest/tasknest-api/internal/service"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

// application holds the shared dependencies so wiring happens in one place
// and cleanup runs in one place on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	taskStore  store.TaskStore
	tokenStore store.TokenStore

	tokenService auth.TokenService
	userService  service.UserService
	taskService  service.TaskService
}

// newApplication wires every dependency from the outside in: stores over the
// shared pool, then the token service, then the orchestrating services.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewUserStore(db, logger)
	app.taskStore = postgres.NewTaskStore(db, logger)
	app.tokenStore = postgres.NewTokenStore(db, logger)

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth, app.tokenStore)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	mailer := email.NewMailer(cfg.Email, logger)
	resizer := imaging.NewResizer(cfg.Upload.AvatarSize)

	app.userService = service.NewUserService(
		db,
		app.userStore,
		app.taskStore,
		app.tokenService,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		mailer,
		resizer,
		logger,
	)
	app.taskService = service.NewTaskService(app.taskStore, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until the context is canceled or a signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
