package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	memorycache "github.com/srgjo27/hotel_reservation/internal/adapter/cache/memory"
	rediscache "github.com/srgjo27/hotel_reservation/internal/adapter/cache/redis"
	"github.com/srgjo27/hotel_reservation/internal/adapter/handler"
	"github.com/srgjo27/hotel_reservation/internal/adapter/messaging/rabbitmq"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/mongodb"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
	"github.com/srgjo27/hotel_reservation/internal/core/services"
	"github.com/srgjo27/hotel_reservation/internal/platform/config"
	"github.com/srgjo27/hotel_reservation/internal/platform/database"
	"github.com/srgjo27/hotel_reservation/internal/platform/logger"
	"github.com/srgjo27/hotel_reservation/internal/platform/seed"
)

type inventoryBackend interface {
	ports.InventoryStore
	ports.InventoryProvisioner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.Development())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, zl *zap.Logger) error {
	ctx := context.Background()

	var db *sql.DB
	if cfg.StorageBackend == config.BackendPostgres {
		var err error
		db, err = database.NewPostgresDB(cfg.Database, zl)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	var ledger ports.ReservationLedger
	switch cfg.StorageBackend {
	case config.BackendMemory:
		zl.Warn("using in-memory reservation ledger, reservations are lost on restart")
		ledger = memory.NewReservationLedger()
	default:
		ledger = postgres.NewReservationLedger(db)
	}

	var inventory inventoryBackend
	switch cfg.InventoryBackend {
	case config.BackendMongo:
		client, err := mongodb.Connect(ctx, cfg.MongoURL)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		zl.Info("mongo connected", zap.String("db", cfg.MongoDB))
		inventory = mongodb.NewInventoryStore(client.Database(cfg.MongoDB))
	default:
		if db == nil {
			zl.Warn("using in-memory inventory, set SEED_DEMO_DATA=true to load demo hotels")
			inventory = memory.NewInventoryStore()
		} else {
			inventory = postgres.NewInventoryRepository(db)
		}
	}

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, inventory, zl); err != nil {
			return err
		}
	}

	var cache ports.AvailabilityCache
	if cfg.StorageBackend == config.BackendMemory {
		cache = memorycache.NewAvailabilityCache(cfg.AvailabilityTTL)
	} else {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr(), DB: 0})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unreachable, serving availability without cache", zap.String("addr", cfg.RedisAddr()), zap.Error(err))
		} else {
			zl.Info("redis connected", zap.String("addr", cfg.RedisAddr()), zap.Duration("ttl", cfg.AvailabilityTTL))
			cache = rediscache.NewAvailabilityCache(redisClient, cfg.AvailabilityTTL)
		}
	}

	var publisher ports.EventPublisher
	if cfg.RabbitMQURL != "" {
		conn, p, err := rabbitmq.Dial(cfg.RabbitMQURL)
		if err != nil {
			zl.Warn("rabbitmq unreachable, reservation events are not published", zap.Error(err))
		} else {
			defer conn.Close()
			defer p.Close()

			zl.Info("rabbitmq connected", zap.String("queue", rabbitmq.QueueReservationEvents))
			publisher = p
		}
	}

	svc := services.NewReservationService(inventory, ledger, cache, publisher, zl, services.Config{
		FreeCancellationWindow: cfg.FreeCancellationWindow,
	})

	router := handler.NewRouter(handler.NewReservationHandler(svc), zl, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server startup failed: %w", err)
	case sig := <-quit:
		zl.Info("shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	zl.Info("server exiting")
	return nil
}
