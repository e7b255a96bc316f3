package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratecalc/cmd"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := cmd.NewLogger(os.Stdout, configs.AppEnv, configs.LogLevel)

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	e, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, e, configs.HTTPPort)
}

func startWebServer(ctx context.Context, e *echo.Echo, port int) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server listening on port %d", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error shutting down HTTP server: %v", err)
	}
}
