package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort             string
	DbHost              string
	DbPort              string
	DbUser              string
	DbPassword          string
	DbName              string
	DbParams            string
	RedisAddr           string
	RedisPassword       string
	RedisRefreshChannel string
	TranslationFolder   string
	TrustedProxies      []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		DbHost:              getEnv("MYSQL_HOST", "db"),
		DbPort:              getEnv("MYSQL_PORT", "3306"),
		DbUser:              getEnv("MYSQL_USER", "taskboard"),
		DbPassword:          getEnv("MYSQL_PASSWORD", "taskboard"),
		DbName:              getEnv("MYSQL_DATABASE", "taskboard"),
		DbParams:            getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		RedisAddr:           strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisRefreshChannel: getEnv("REDIS_REFRESH_CHANNEL", "taskboard:refresh"),
		TranslationFolder:   getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:      parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
