package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backend names accepted by STORE_BACKEND.
const (
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendSQLite   = "sqlite"
	StoreBackendMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Log         LogConfig
	Store       StoreConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
	JSON  bool
}

// StoreConfig holds document store configuration
type StoreConfig struct {
	Backend       string
	ShopsTable    string
	ProductsTable string
	ShopIndex     string
	Region        string
	Endpoint      string
	SQLitePath    string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_JSON", false)
	viper.SetDefault("STORE_BACKEND", StoreBackendSQLite)
	viper.SetDefault("SHOPS_TABLE", "shops")
	viper.SetDefault("PRODUCTS_TABLE", "products")
	viper.SetDefault("SHOP_INDEX", "shopid")
	viper.SetDefault("SQLITE_PATH", "./data/webshop.db")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
			JSON:  viper.GetBool("LOG_JSON"),
		},
		Store: StoreConfig{
			Backend:       viper.GetString("STORE_BACKEND"),
			ShopsTable:    viper.GetString("SHOPS_TABLE"),
			ProductsTable: viper.GetString("PRODUCTS_TABLE"),
			ShopIndex:     viper.GetString("SHOP_INDEX"),
			Region:        viper.GetString("AWS_REGION"),
			Endpoint:      viper.GetString("DYNAMODB_ENDPOINT"),
			SQLitePath:    viper.GetString("SQLITE_PATH"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
