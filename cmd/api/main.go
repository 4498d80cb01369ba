package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expgrowth/internal/api"
	"expgrowth/internal/cache"
	"expgrowth/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(os.Getenv("EXPGROWTH_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cache.New(ctx, cache.Options{
		Backend:   cfg.Cache.Backend,
		TTL:       cfg.Cache.TTL,
		RedisAddr: cfg.Cache.RedisAddr,
		RedisDB:   cfg.Cache.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to set up %s cache: %v", cfg.Cache.Backend, err)
	}
	defer store.Close()
	log.Printf("Result cache: %s", cfg.Cache.Backend)

	srv, err := api.NewServer(cfg, store)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           srv.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
