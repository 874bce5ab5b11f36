package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-guides-api/config"
	"delivery-guides-api/handlers"
	"delivery-guides-api/repository"
	"delivery-guides-api/routes"
	"delivery-guides-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	logger.Info("starting", "config", cfg.String())

	db, err := config.InitDB(cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	guides := repository.NewGuideRepository(db)
	orders := repository.NewOrderRepository(db)
	if cfg.SeedOrders {
		n, err := repository.SeedOrders(context.Background(), orders)
		if err != nil {
			return err
		}
		logger.Info("sample orders seeded", "count", n)
	}

	uploads, err := storage.NewUploads(cfg.UploadsDir)
	if err != nil {
		return err
	}

	h := handlers.New(guides, orders, uploads, sqlDB, logger)
	r := routes.NewRouter(h, uploads, cfg.CORSOrigins, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", "http://localhost"+cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}
