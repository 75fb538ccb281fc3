package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// RedisAddr enables the transaction lookup cache when set.
	RedisAddr string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// SeedDemoData provisions the demo clients and accounts at startup.
	SeedDemoData bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SEED_DEMO_DATA", false)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  viper.GetString("PGSQL_URL"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		RedisAddr:    viper.GetString("REDIS_ADDR"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
		SeedDemoData: viper.GetBool("SEED_DEMO_DATA"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set; transaction lookup caching disabled.")
	}

	return cfg, nil
}
