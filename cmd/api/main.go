package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mtessier/recipe-api/config"
	"github.com/mtessier/recipe-api/internal/database"
	"github.com/mtessier/recipe-api/internal/logger"
	"github.com/mtessier/recipe-api/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		lg.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		lg.Fatal("failed to run migrations", "error", err)
	}

	srv := server.New(cfg, db, lg)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			lg.Fatal("server error", "error", err)
		}
	case sig := <-quit:
		lg.Info("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Fatal("server shutdown error", "error", err)
	}
	lg.Info("server stopped")
}
