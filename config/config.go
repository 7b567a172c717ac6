package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	MigrationsPath string
	SecretKey      []byte
}

// Load reads configuration from the environment, with an optional .env file.
// All missing required variables are reported together.
func Load() (*Config, error) {
	// a .env file is a local convenience; in deployment the variables come
	// from the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		SecretKey:      []byte(os.Getenv("JWT_SECRET_KEY")),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://database/migrations"
	}

	var result *multierror.Error
	if cfg.DatabaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("DATABASE_URL is not set"))
	}
	if len(cfg.SecretKey) == 0 {
		result = multierror.Append(result, fmt.Errorf("JWT_SECRET_KEY is not set"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}
