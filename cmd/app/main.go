package main

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

	"kitchenpos/cmd"
	"kitchenpos/internal/adapters/out/kitchenriders"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/purgomalum"
	"kitchenpos/internal/metrics"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "kitchenpos")
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// run returns instead of exiting so every deferred close runs on the error paths too.
func run(logger *slog.Logger) error {
	configs, err := cmd.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	rabbit, err := kitchenriders.Connect(configs.RabbitMQURL, configs.DeliveryExchange, logger)
	if err != nil {
		return fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	defer func() {
		if closeErr := rabbit.Close(); closeErr != nil {
			logger.Error("RabbitMQ connection close failed", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(
		configs,
		db,
		purgomalum.NewClient(configs.PurgomalumURL, configs.PurgomalumTimeout, logger),
		kitchenriders.NewDispatcher(rabbit, configs.DeliveryExchange, configs.DeliveryRoutingKey, logger),
		metrics.New(),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("error starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPAddr(), logger)
	return nil
}

// startWebServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func startWebServer(app cmd.CompositionRoot, addr string, logger *slog.Logger) {
	e := app.CreateRouter()
	e.Logger.SetLevel(log.INFO)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
