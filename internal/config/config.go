package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	AutoMigrate     bool
	GinMode         string
	WorkbookPath    string
	WorkbookMaxMB   int64
	IngestTimeout   time.Duration
	EagerIngestData bool
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "tbe"),
		DBPassword:      getEnv("DB_PASSWORD", "tbe_secret"),
		DBName:          getEnv("DB_NAME", "tbe"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:     getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:         getEnv("GIN_MODE", "debug"),
		WorkbookPath:    getEnv("WORKBOOK_PATH", "data/Dinamica_Presupuesto_ViajeroEventoDeportivo.xlsx"),
		WorkbookMaxMB:   getEnvInt64("WORKBOOK_MAX_MB", 20),
		IngestTimeout:   time.Duration(getEnvInt64("INGEST_TIMEOUT_SECONDS", 30)) * time.Second,
		EagerIngestData: getEnv("EAGER_INGEST", "false") == "true",
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
