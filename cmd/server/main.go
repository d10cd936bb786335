package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"sduiGateway/internal/config"
	accountsport "sduiGateway/internal/modules/accounts/application/port"
	accountsusecase "sduiGateway/internal/modules/accounts/application/usecase"
	accountsinfra "sduiGateway/internal/modules/accounts/infrastructure"
	accountstransport "sduiGateway/internal/modules/accounts/interface"
	realtimehandler "sduiGateway/internal/modules/realtime/application/handler"
	realtimeinfra "sduiGateway/internal/modules/realtime/infrastructure"
	realtimetransport "sduiGateway/internal/modules/realtime/interface"
	sduiport "sduiGateway/internal/modules/sdui/application/port"
	sduiusecase "sduiGateway/internal/modules/sdui/application/usecase"
	sduiinfra "sduiGateway/internal/modules/sdui/infrastructure"
	sduitransport "sduiGateway/internal/modules/sdui/interface"
	"sduiGateway/internal/platform/broker"
	"sduiGateway/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("storage config resolved", slog.String("driver", cfg.Storage.Driver))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		pool, err = pgxpool.New(ctx, cfg.Storage.PostgresURL)
		if err != nil {
			slog.Error("postgres pool init failed", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
	}

	var sectionFetcher sduiport.SectionRecordFetcher
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		sectionFetcher = sduiinfra.NewSectionRecordPgStore(pool)
	case config.StorageDriverREST:
		sectionFetcher = sduiinfra.NewSectionRecordHTTPClient(cfg.Storage.REST.BaseURL, cfg.Storage.REST.ServiceToken, cfg.Storage.REST.Timeout, nil)
	}

	var sessions accountsport.SessionStore
	if pool != nil {
		sessions = accountsinfra.NewSessionPgStore(pool)
	} else {
		slog.Warn("no database configured, sessions are in-memory and lost on restart")
		sessions = accountsinfra.NewSessionMemoryStore()
	}

	verifier := accountsinfra.NewJWTIdentityVerifier(cfg.Security.IdentityJWTSecret, cfg.Security.IdentityJWTPublicKey)
	authorizeUC := accountsusecase.NewAuthorizeUseCase(verifier, sessions, cfg.Session.TTL)
	deauthorizeUC := accountsusecase.NewDeauthorizeUseCase(sessions)
	whoamiUC := accountsusecase.NewWhoamiUseCase(sessions)
	resolveUC := sduiusecase.NewResolveEntrypointUseCase(sectionFetcher, nil)

	hub := realtimeinfra.NewHub()
	broker.StartKafkaConsumers(ctx, realtimehandler.NewEntrypointUpdatedHandler(hub), cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	e.GET("/mobile/entrypoint/:key/sections", sduitransport.NewEntrypointSectionsHandler(resolveUC, whoamiUC))
	e.GET("/mobile/whoami", accountstransport.NewWhoamiHandler(whoamiUC))
	e.POST("/mobile/authorize", accountstransport.NewAuthorizeHandler(authorizeUC))
	e.POST("/mobile/deauthorize", accountstransport.NewDeauthorizeHandler(deauthorizeUC))
	e.GET("/sdui/schema", sduitransport.NewComponentSchemaHandler())
	e.GET("/ws/entrypoint/:key", realtimetransport.NewEntrypointStreamHandler(hub))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
