package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DatabaseURL string
}

// Load reads configuration from the environment. DATABASE_URL, when set,
// wins outright; otherwise the URL is composed from the individual DB_*
// variables with local-development defaults.
func Load() AppConfig {
	_ = godotenv.Load() // load .env if present

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return AppConfig{
		Port:        port,
		DatabaseURL: databaseURL(),
	}
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getenvDefault("DB_HOST", "localhost")
	dbPort := getenvDefault("DB_PORT", "5432")
	name := getenvDefault("DB_NAME", "hrms")
	user := getenvDefault("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, dbPort, name)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
