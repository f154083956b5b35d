package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StorageDriver string // "sqlite" or "memory"
	StorageSource string
	GinMode       string
}

func LoadConfig() *Config {
	// .env is optional; env vars and defaults cover everything.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment and defaults")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		StorageDriver: getEnv("STORAGE_DRIVER", "sqlite"),
		StorageSource: getEnv("STORAGE_SOURCE", "storefront.db"),
		GinMode:       getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
