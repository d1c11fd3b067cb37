package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aleksmelnikov/fitness-helper/internal/logger"
)

type Config struct {
	TelegramToken     string
	OpenWeatherAPIKey string
	WeatherBaseURL    string
	GeocoderBaseURL   string
	FoodBaseURL       string
	HTTPTimeout       time.Duration
	FoodCacheSize     int
	DB                DBConfig
	RedisAddr         string // empty means in-memory session state
	Logger            LoggerConfig
}

// DBConfig describes the optional Postgres storage. An empty Host selects the
// in-memory store.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		WeatherBaseURL:    getEnvOrDefault("WEATHER_BASE_URL", "https://api.openweathermap.org"),
		GeocoderBaseURL:   getEnvOrDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		FoodBaseURL:       getEnvOrDefault("FOOD_BASE_URL", "https://world.openfoodfacts.org"),
		HTTPTimeout:       time.Duration(getIntOrDefault("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		FoodCacheSize:     getIntOrDefault("FOOD_CACHE_SIZE", 100),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "fitness_helper"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	return cfg, nil
}
