package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpapi "github.com/spec-kit/event-budget-service/internal/api/http"
	"github.com/spec-kit/event-budget-service/internal/api/http/handlers"
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/config"
	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/observability"
	"github.com/spec-kit/event-budget-service/internal/persistence"
	"github.com/spec-kit/event-budget-service/internal/repository"
	"github.com/spec-kit/event-budget-service/internal/service"
	"github.com/spec-kit/event-budget-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if cfg.Postgres.RunMigrations && db.Pool != nil {
		if err := persistence.RunMigrations(ctx, db.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redisStore := persistence.NewRedis(cfg.Redis, logger)
	defer redisStore.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	userRepo := repository.NewUserRepository(db.Pool)
	unitRepo := repository.NewUnitRepository(db.Pool)
	eventRepo := repository.NewEventRepository(db.Pool)
	transactionRepo := repository.NewTransactionRepository(db.Pool)
	requisitionRepo := repository.NewRequisitionRepository(db.Pool)
	operatorRepo := repository.NewOperatorRepository(db.Pool)
	serviceRepo := repository.NewServiceRepository(db.Pool)
	communicationRepo := repository.NewCommunicationRepository(db.Pool)

	summaries := service.NewSummaryCache(redisStore.Client, cfg.Redis.SummaryCacheTTL(), logger)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo, unitRepo, cfg.Auth.BcryptCost)
	unitService := service.NewUnitService(unitRepo)
	catalogService := service.NewCatalogService(operatorRepo, serviceRepo)
	eventService := service.NewEventService(service.EventDependencies{
		EventRepo:       eventRepo,
		TransactionRepo: transactionRepo,
		UnitRepo:        unitRepo,
		Dispatcher:      dispatcher,
		Summaries:       summaries,
	})
	transactionService := service.NewTransactionService(transactionRepo, eventRepo, requisitionRepo, dispatcher, summaries)
	requisitionService := service.NewRequisitionService(requisitionRepo, transactionRepo, eventRepo, dispatcher)
	communicationService := service.NewCommunicationService(communicationRepo, eventRepo, serviceRepo, operatorRepo, dispatcher)
	notificationService := service.NewNotificationService(cfg.Notification, logger)

	worker.StartNotificationWorker(dispatcher, notificationService, logger)

	if err := bootstrapMaster(ctx, cfg, userRepo, logger); err != nil {
		logger.Fatal("failed to bootstrap admin account", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.App.RequestTimeout(),
		WriteTimeout: cfg.App.RequestTimeout(),
		ErrorHandler: httpapi.NewErrorHandler(logger, metrics),
	})
	httpapi.RegisterMiddlewares(app, logger, metrics)

	authMw := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	httpapi.RegisterRoutes(app, httpapi.Handlers{
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(eventService),
		Transactions:   handlers.NewTransactionsHandler(transactionService),
		Requisitions:   handlers.NewRequisitionsHandler(requisitionService),
		Communications: handlers.NewCommunicationsHandler(communicationService),
		Users:          handlers.NewUsersHandler(userService),
		Units:          handlers.NewUnitsHandler(unitService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Health:         handlers.NewHealthHandler(cfg.App.Version, db, redisStore),
	}, authMw)

	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// bootstrapMaster seeds the first MASTER account so a fresh deployment can
// log in. It is a no-op once any MASTER exists or when the bootstrap
// credentials are not configured.
func bootstrapMaster(ctx context.Context, cfg *config.Config, users repository.UserRepository, logger *zap.Logger) error {
	if cfg.Bootstrap.AdminEmail == "" || cfg.Bootstrap.AdminPassword == "" {
		return nil
	}
	count, err := users.CountByRole(ctx, domain.RoleMaster)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Bootstrap.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Name:         cfg.Bootstrap.AdminName,
		Email:        cfg.Bootstrap.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleMaster,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("bootstrapped MASTER account", zap.String("email", admin.Email))
	return nil
}
