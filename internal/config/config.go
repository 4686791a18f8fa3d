package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port             int
	MaxPurchasePrice float64
	MaxMonthlyRent   float64
	MaxLoanTermYears int
	MaxRate          float64
	OTELEndpoint     string
	OTELServiceName  string
	LogLevel         string
	LogFormat        string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvInt("PORT", 8000),
		MaxPurchasePrice: getEnvFloat("MAX_PURCHASE_PRICE", 1e11),
		MaxMonthlyRent:   getEnvFloat("MAX_MONTHLY_RENT", 1e9),
		MaxLoanTermYears: getEnvInt("MAX_LOAN_TERM_YEARS", 50),
		MaxRate:          getEnvFloat("MAX_RATE", 100),
		OTELEndpoint:     getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:  getEnvString("OTEL_SERVICE_NAME", "mcp-realestate-server"),
		LogLevel:         getEnvString("LOG_LEVEL", "info"),
		LogFormat:        getEnvString("LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
