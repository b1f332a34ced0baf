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

	"cargo/cmd"
	httpadapter "cargo/internal/adapters/in/http"
	"cargo/internal/jobs"

	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(configs)

	gateways, closeStorage, err := cmd.OpenStorage(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error("Closing storage failed", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(gateways, logger)

	seeds, _ := configs.LocationSeeds()
	if err := app.SeedLocations(ctx, seeds); err != nil {
		log.Fatalf("Error seeding locations: %v", err)
	}

	jobManager := jobs.NewJobManager(app, configs.ReportSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func newLogger(configs cmd.Config) *slog.Logger {
	level, _ := configs.SlogLevel()
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// startWebServer serves the API until ctx is cancelled, then shuts down.
func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e, err := httpadapter.NewRouter(ctx, httpadapter.NewServer(app), app.Validator())
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}
	e.Logger.SetLevel(log.INFO)
	e.Server.ReadHeaderTimeout = 10 * time.Second

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
