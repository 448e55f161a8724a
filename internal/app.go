// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "splitledger/internal/api"
	"splitledger/internal/api/handler"
	"splitledger/internal/auth"
	"splitledger/internal/config"
	"splitledger/internal/repository"
	"splitledger/internal/repository/postgres"
	"splitledger/internal/service"
	"splitledger/internal/util"
	"splitledger/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository         repository.UserRepository
	GroupRepository        repository.GroupRepository
	SplitRepository        repository.SplitRepository
	PaymentRepository      repository.PaymentRepository
	NotificationRepository repository.NotificationRepository

	// Services
	UserService         service.UserService
	TransferService     service.TransferService
	SplitService        service.SplitService
	GroupService        service.GroupService
	NotificationService service.NotificationService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to database and run migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.RunMigrations(app.DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	app.Logger.Info("Database connection established and schema migrated.")

	// 4. Initialize repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.GroupRepository = postgres.NewGroupRepository(app.DB)
	app.SplitRepository = postgres.NewSplitRepository(app.DB)
	app.PaymentRepository = postgres.NewPaymentRepository(app.DB)
	app.NotificationRepository = postgres.NewNotificationRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize services
	jwtManager := auth.NewJWTManager(app.Config.JWTSecret, app.Config.TokenTTL)
	app.UserService = service.NewUserService(app.DB, app.UserRepository, jwtManager)
	app.NotificationService = service.NewNotificationService(app.DB, app.UserRepository, app.NotificationRepository)
	app.TransferService = service.NewTransferService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.UserRepository,
		app.PaymentRepository,
		app.NotificationService,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.SplitService = service.NewSplitService(
		app.DB,
		app.DB,
		app.UserRepository,
		app.SplitRepository,
		app.NotificationService,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.GroupService = service.NewGroupService(
		app.DB,
		app.DB,
		app.UserRepository,
		app.GroupRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP handlers and router
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(app.UserService, app.Logger),
		User:         handler.NewUserHandler(app.UserService, app.Logger),
		Transfer:     handler.NewTransferHandler(app.TransferService, app.Logger),
		Split:        handler.NewSplitHandler(app.SplitService, app.Logger),
		Group:        handler.NewGroupHandler(app.GroupService, app.Logger),
		Notification: handler.NewNotificationHandler(app.NotificationService, app.Logger),
	}
	app.HTTPHandler = router.NewRouter(handlers, jwtManager, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
