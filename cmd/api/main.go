// Package main is the entry point for the Fluxx Sales API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/white/fluxx-sales/config"
	"github.com/white/fluxx-sales/internal/cache"
	"github.com/white/fluxx-sales/internal/events"
	"github.com/white/fluxx-sales/internal/handlers"
	"github.com/white/fluxx-sales/internal/logging"
	"github.com/white/fluxx-sales/internal/repositories"
	"github.com/white/fluxx-sales/internal/services"
	"github.com/white/fluxx-sales/internal/utils"
	"github.com/white/fluxx-sales/pkg/amqp"
	"github.com/white/fluxx-sales/pkg/kafka"
	"github.com/white/fluxx-sales/pkg/mongodb"
	"github.com/white/fluxx-sales/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables (ignore error in dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Connections are opened on first use.
	mongoConn := mongodb.NewLazy(mongodb.Config{
		URI:         cfg.MongoDB.URI,
		Database:    cfg.MongoDB.Database,
		MaxPoolSize: cfg.MongoDB.MaxPoolSize,
		MinPoolSize: cfg.MongoDB.MinPoolSize,
		TLSCAFile:   cfg.MongoDB.TLSCAFile,
	})
	pgConn := postgres.NewLazy(postgres.Config{
		URL:          cfg.Postgres.URL,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		LogQueries:   cfg.Postgres.LogQueries,
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoConn.Close(ctx); err != nil {
			logger.Warn("Error closing MongoDB", zap.Error(err))
		}
		if err := pgConn.Close(); err != nil {
			logger.Warn("Error closing Postgres", zap.Error(err))
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()
		logger.Info("Account cache enabled", zap.String("addr", cfg.Redis.Addr))
	}
	accountCache := cache.NewAccountCache(redisClient, cfg.Redis.AccountTTL)

	sink, closeSink, err := newAuditSink(cfg, logger)
	if err != nil {
		return err
	}
	audit := events.NewAuditPublisher(sink, logger)
	// Drain in-flight audit deliveries before the producer goes away.
	defer closeSink()
	defer audit.Close()

	jwtService, err := utils.NewJWTService(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT service initialized")

	userRepo := repositories.NewMongoUserRepository(mongoConn)
	accountRepo := repositories.NewAccountRepository(pgConn)
	activityRepo := repositories.NewActivityRepository(pgConn)
	salesOrderRepo := repositories.NewSalesOrderRepository(pgConn)

	prepareStores(userRepo, activityRepo, logger)

	expiresIn := int(jwtService.Expiry().Seconds())
	authService := services.NewAuthService(userRepo, jwtService, expiresIn)
	accountService := services.NewAccountService(accountRepo, accountCache, logger)
	activityService := services.NewActivityService(activityRepo)
	reportService := services.NewReportService(salesOrderRepo, cfg.Report.PendingStatuses)

	checks := map[string]handlers.Pinger{
		"mongodb":  mongoConn,
		"postgres": pgConn,
	}
	if accountCache.Enabled() {
		checks["redis"] = accountCache
	}

	router := newRouter(routerDeps{
		cfg:      cfg,
		logger:   logger,
		tokens:   jwtService,
		health:   handlers.NewHealthHandler(cfg.Server.Version, checks),
		auth:     handlers.NewAuthHandler(authService, audit, logger),
		users:    handlers.NewUserHandler(authService, logger),
		accounts: handlers.NewAccountHandler(accountService, logger),
		activity: handlers.NewActivityHandler(activityService, audit, logger),
		reports:  handlers.NewReportHandler(reportService, logger),
		jwks:     handlers.NewJWKSHandler(jwtService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server running", zap.String("addr", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// prepareStores creates indexes and tables. Failures are logged: the stores
// may be unreachable at boot and are retried on the first request.
func prepareStores(users *repositories.MongoUserRepository, activities *repositories.ActivityRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := users.EnsureIndexes(ctx); err != nil {
		logger.Warn("Could not ensure user indexes", zap.Error(err))
	}
	if err := activities.Migrate(ctx); err != nil {
		logger.Warn("Could not migrate activity table", zap.Error(err))
	}
}

// newAuditSink builds the broker selected by events.driver. The returned
// close func is always safe to call.
func newAuditSink(cfg *config.Config, logger *zap.Logger) (events.Sink, func(), error) {
	switch cfg.Events.Driver {
	case "kafka":
		producer, err := kafka.NewProducer(cfg.Kafka, logger)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Info("Audit events go to Kafka", zap.String("topic", cfg.Kafka.Topics.Audit))
		return events.KafkaSink{Producer: producer, Topic: cfg.Kafka.Topics.Audit}, producer.Close, nil
	case "rabbitmq":
		logger.Info("Audit events go to RabbitMQ", zap.String("queue", cfg.RabbitMQ.Queue))
		return events.AMQPSink{Publisher: amqp.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)}, func() {}, nil
	default:
		return nil, func() {}, nil
	}
}
