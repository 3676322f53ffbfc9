package config

import (
	"os"
)

// Config конфигурация сервиса из переменных окружения
type Config struct {
	Port      string
	Mode      string
	ModelPath string
}

// Load собирает конфигурацию со значениями по умолчанию
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8053"),
		Mode: getEnv("GIN_MODE", "release"),
		// пустое значение — артефакт ищется рядом с исполняемым файлом
		ModelPath: getEnv("MODEL_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
