package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dev-charan/Digi-Locker/config"
	"github.com/dev-charan/Digi-Locker/db"
	"github.com/dev-charan/Digi-Locker/internal/auth/handler"
	repo "github.com/dev-charan/Digi-Locker/internal/auth/repository/postgres"
	"github.com/dev-charan/Digi-Locker/internal/auth/service"
	"github.com/dev-charan/Digi-Locker/internal/document"
	"github.com/dev-charan/Digi-Locker/internal/geoip"
	"github.com/dev-charan/Digi-Locker/internal/mailer"
	"github.com/dev-charan/Digi-Locker/internal/worker"
	authconstant "github.com/dev-charan/Digi-Locker/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx := context.Background()
	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	mailService, err := mailer.NewService(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		BaseURL:  cfg.AppBaseURL,
	})
	if err != nil {
		logger.Error("failed to configure mailer", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(4, 64, logger)
	defer pool.Shutdown()

	authRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	auditor := service.NewLoginAuditor(authRepo, geoip.NewClient(), mailService, logger)
	userService := service.NewUserService(authRepo, authRepo, tokenService, mailService,
		auditor, pool, logger)
	authHandler := handler.NewAuthHandler(userService, cfg.IsProduction(), logger)

	docRepo := document.NewPostgresRepository(dbPool)
	docHandler := document.NewHandler(docRepo, cfg.UploadDir, logger)

	app := fiber.New(fiber.Config{
		BodyLimit: authconstant.MaxUploadBytes + 1<<20, // multipart overhead
	})
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AppBaseURL,
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(app, authHandler, tokenService, authRepo)
	document.RegisterRoutes(app, docHandler, handler.RequireAuth(tokenService, authRepo))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("server started", "port", cfg.Port, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
