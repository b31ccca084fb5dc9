package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"stockquote/internal/config"
	"stockquote/internal/quote"
	"stockquote/internal/stockdata"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		log.Printf("dotenv: %v", err)
	}
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var seed []quote.Quote
	if cfg.Server.SeedFile != "" {
		seed, err = stockdata.LoadSeed(cfg.Server.SeedFile)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Printf("seeded %d quotes from %s", len(seed), cfg.Server.SeedFile)
	}

	router := stockdata.NewRouter(stockdata.NewHandler(stockdata.NewStore(seed...)), gin.Logger(), gin.Recovery())

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
