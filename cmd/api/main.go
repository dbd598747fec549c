package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"velocity-shop/internal/client"
	"velocity-shop/internal/config"
	"velocity-shop/internal/logger"
	"velocity-shop/internal/repository"
	"velocity-shop/internal/server"
	"velocity-shop/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	pflag.Parse()

	// load .env into os.Environ
	if err := godotenv.Load(*envFile); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "velocity-api",
		Env:     cfg.Environment.Name,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})

	store, err := client.OpenStore(context.Background(), cfg.Store)
	if err != nil {
		log.Error("open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}

	userService := service.NewUserService(repository.NewUserRepository())
	productService := service.NewProductService(repository.NewProductRepository())
	cartService := service.NewCartService(store.Cart)
	orderService := service.NewOrderService(store.Orders, store.Cart)

	// Init HTTP server
	srv := server.NewServer(
		log,
		cfg.CORS.AllowOrigins,
		userService,
		productService,
		cartService,
		orderService,
	)

	serverAddr := cfg.HTTP.Address()
	log.Info("Starting HTTP server", "addr", serverAddr, "store", cfg.Store.Driver)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	if err := store.Close(shutdownCtx); err != nil {
		log.Error("close store", "error", err)
	}

	log.Info("shutdown complete")
}
