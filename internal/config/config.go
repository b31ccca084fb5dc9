package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Server struct {
	Port     string `json:"port"`
	SeedFile string `json:"seed_file"`
}

type StockData struct {
	BaseURL           string `json:"base_url"`
	Symbol            string `json:"symbol"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	UserAgent         string `json:"user_agent"`
}

type Config struct {
	Server    Server    `json:"server"`
	StockData StockData `json:"stock_data"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080"},
		StockData: StockData{
			Symbol:            "AAPL",
			RequestTimeoutSec: 15,
		},
	}
}

// LoadDotenv loads KEY=VALUE pairs from the given files (".env" when none)
// into the process environment. Variables already set are left alone and
// missing files are skipped.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	if cfg.StockData.RequestTimeoutSec <= 0 {
		cfg.StockData.RequestTimeoutSec = Default().StockData.RequestTimeoutSec
	}
	cfg.StockData.BaseURL = strings.TrimSpace(cfg.StockData.BaseURL)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("SEED_FILE"); v != "" {
		cfg.Server.SeedFile = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.StockData.BaseURL = v
	}
	// SYMBOL may be set to an empty string on purpose; only unset keeps the default.
	if v, ok := os.LookupEnv("SYMBOL"); ok {
		cfg.StockData.Symbol = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.StockData.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.StockData.UserAgent = v
	}
}
