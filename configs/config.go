package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	JWTSecret     string
	TicketTTL     time.Duration
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env optionnel : en prod tout vient de l'environnement.
	_ = godotenv.Load()

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "sf_restaurant.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		TicketTTL:     getDuration("TICKET_TTL_MINUTES", 15),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@sf-restaurant.fr"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallbackMinutes int) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return time.Duration(fallbackMinutes) * time.Minute
}
