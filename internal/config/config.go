package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Значения переменной ENV
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	DBDSN          string
	APIBaseURL     string
	APIToken       string
	TelegramToken  string
	TelegramChatID int64
	Environment    string
	PollInterval   time.Duration
	HTTPTimeout    time.Duration
}

func LoadConfig() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		APIToken:      os.Getenv("API_TOKEN"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Environment:   os.Getenv("ENV"),
		PollInterval:  durationEnv("POLL_INTERVAL_SECONDS", 60),
		HTTPTimeout:   durationEnv("HTTP_TIMEOUT_SECONDS", 15),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = EnvDevelopment
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://school-api-server.vercel.app/api"
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not a number: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

// durationEnv читает длительность в секундах из переменной окружения
func durationEnv(key string, defSeconds int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defSeconds) * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using default %ds", key, raw, defSeconds)
		return time.Duration(defSeconds) * time.Second
	}
	return time.Duration(seconds) * time.Second
}
