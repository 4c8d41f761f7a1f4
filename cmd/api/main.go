package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notes-copilot/config"
	_ "notes-copilot/docs" // Swagger docs
	"notes-copilot/internal/app"
	"notes-copilot/internal/auth"
	"notes-copilot/internal/httpserver"
	"notes-copilot/pkg/log"
)

// @title       Notes Copilot API
// @description Text generation over notes, TickTick task briefings and the TickTick OAuth connect flow.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notes-copilot API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dependencies
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		os.Exit(1)
	}
	defer a.Close()

	var authorizer auth.Authorizer
	if cfg.TickTick.ClientID != "" {
		authorizer = a.Authenticator
	} else {
		logger.Warn(ctx, "ticktick.client_id not set, OAuth connect flow disabled")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		JWTSecret:       cfg.Auth.JWTSecret,
		TaskUseCase:     a.TaskUC,
		BriefingUseCase: a.BriefingUC,
		Generator:       a.Manager,
		Authorizer:      authorizer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
