package config

import (
	"flag"
	"os"
	"time"

	"github.com/darwincel7/taller-sub001/internal/auth"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string
	DatabaseURI   string
	Key           string
	SweepInterval time.Duration
	TokenTTL      time.Duration
}

func NewConfig() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DB connection string")
	flag.StringVar(&cfg.Key, "k", "", "JWT signing key")
	flag.DurationVar(&cfg.SweepInterval, "s", 60*time.Second, "overdue sweep interval")
	flag.DurationVar(&cfg.TokenTTL, "t", auth.DefaultTokenTTL, "auth token lifetime")
	flag.Parse()

	ReadServerEnvironment(cfg)

	return cfg
}

func ReadServerEnvironment(cfg *Config) {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		cfg.DatabaseURI = databaseURI
	}

	if key := os.Getenv("TALLER_KEY"); key != "" {
		cfg.Key = key
	}

	if interval := os.Getenv("SWEEP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			cfg.SweepInterval = d
		}
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = d
		}
	}
}
