package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	JWTExpiry  time.Duration

	// Durable storage. Driver is "file" or "redis"; the document, session
	// snapshot and the small string entries all live under DataKey-derived
	// keys in whichever backend is selected.
	StorageDriver string
	StoragePath   string
	RedisAddr     string
	RedisPassword string
	DataKey       string

	// Mercado Pago checkout service.
	MPAccessToken string
	MPPublicKey   string
	MPBaseURL     string
	MPTimeout     time.Duration

	// SiteURL is used to build the checkout back URLs.
	SiteURL string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpiry:     getDurationEnv("JWT_EXPIRY_HOURS", 72) * time.Hour,
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		StoragePath:   getEnv("STORAGE_PATH", "./data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DataKey:       getEnv("DATA_KEY", "novatek-dev-v2"),
		MPAccessToken: getEnv("MP_ACCESS_TOKEN", ""),
		MPPublicKey:   getEnv("MP_PUBLIC_KEY", ""),
		MPBaseURL:     getEnv("MP_BASE_URL", "https://api.mercadopago.com"),
		MPTimeout:     getDurationEnv("MP_TIMEOUT_SEC", 15) * time.Second,
		SiteURL:       getEnv("SITE_URL", "http://localhost:8080"),
	}, nil
}

// SessionKey is the storage key of the authenticated-user snapshot.
func (c *Config) SessionKey() string {
	return c.DataKey + ":current-user"
}

// SelectedPlanKey is the storage key of the plan chosen during signup.
func (c *Config) SelectedPlanKey() string {
	return c.DataKey + ":selected-plan"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %d", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}
