package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"stockquote/internal/config"
	"stockquote/internal/httpx"
	"stockquote/internal/quote"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		log.Printf("dotenv: %v", err)
	}
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	run(fetcher, cfg, os.Stdout)
}

func newFetcher(cfg config.Config) (*quote.Fetcher, error) {
	timeout := time.Duration(cfg.StockData.RequestTimeoutSec) * time.Second
	httpClient := httpx.New(timeout)
	if cfg.StockData.UserAgent != "" {
		httpClient.UserAgent = cfg.StockData.UserAgent
	}
	return quote.NewFetcher(
		quote.Config{BaseURL: cfg.StockData.BaseURL},
		quote.WithHTTPClient(httpClient),
		quote.WithLogger(log.New(os.Stderr, "", log.LstdFlags)),
	)
}

// run fetches the configured symbol once and renders it. Fetch failures are
// already logged by the fetcher and end in "No data found.", never an error exit.
func run(fetcher *quote.Fetcher, cfg config.Config, out io.Writer) {
	ctx := context.Background()
	if cfg.StockData.RequestTimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.StockData.RequestTimeoutSec)*time.Second)
		defer cancel()
	}

	res := fetcher.FetchQuote(ctx, cfg.StockData.Symbol)
	if err := quote.Render(out, res); err != nil {
		log.Printf("render: %v", err)
	}
}
