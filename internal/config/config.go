package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	BcryptCost  int
	CORSOrigins string
}

// Load reads .env (when present) and the process environment.
// JWT_SECRET and MONGO_URI are required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      getEnv("DB_NAME", "social"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  bcrypt.DefaultCost,
		CORSOrigins: getEnv("FRONTEND_ORIGINS", "*"),
	}

	if v := os.Getenv("SALT_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SALT_ROUNDS: %w", err)
		}
		cfg.BcryptCost = n
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
