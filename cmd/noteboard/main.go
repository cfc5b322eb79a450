package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/server/adapters/cache"
	httpServer "noteboard/internal/server/adapters/http"
	"noteboard/internal/server/adapters/postgres"
	"noteboard/internal/server/app"
	"noteboard/internal/server/config"
	cachePorts "noteboard/internal/server/ports/cache"
	db "noteboard/pkg/db/postgres"
	"noteboard/pkg/logger"
	"noteboard/pkg/shutdown"
)

// Environment variables read before the configuration is available.
const (
	EnvLoggerMode  = "NOTEBOARD_LOGGER_MODE"
	EnvLoggerLevel = "NOTEBOARD_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrRunMigrations        = "failed to run database migrations"
	ErrConnectDatabase      = "failed to connect to database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Sync errors that are expected when logging to a terminal.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "noteboard service started"
	LogServiceShutdownDone = "noteboard service shutdown complete"
	LogRunningMigrations   = "running database migrations"
	LogInitRepositories    = "initializing repositories"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "cache disabled, serving straight from the database"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
)

func main() {
	env := logger.Production
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "development" {
		env = logger.Development
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogRunningMigrations)
		if err := db.MigrateDSN(ctx, cfg.Database.GetDSN(), cfg.Database.MigrationsPath); err != nil {
			log.Error(ctx, ErrRunMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		database, err := db.New(ctx, cfg.Database.GetDSN(), cfg.Database.MinConns, cfg.Database.MaxConns)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		var listCache cachePorts.Cache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			listCache, err = cache.NewRedisCache(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				exitCode = 1
				return
			}
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitRepositories)
		noteRepository := postgres.NewNoteRepository(database.Pool())
		categoryRepository := postgres.NewCategoryRepository(database.Pool())

		log.Info(ctx, LogInitServices)
		noteService := app.NewNoteUseCase(noteRepository, listCache)
		categoryService := app.NewCategoryUseCase(categoryRepository, listCache)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, noteService, categoryService, cfg.HTTP.StaticDir)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			func(ctx context.Context) error {
				database.Close(ctx)
				return nil
			},
			func(ctx context.Context) error {
				if listCache != nil {
					return listCache.Close()
				}
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
