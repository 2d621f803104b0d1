package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	Issuer             string
	TokenTTL           time.Duration
	ServerPort         string
	IsProduction       bool
	LogLevel           string
	DbDriver           string
	DbPath             string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	MapSearchURL       string
	PDFFontPath        string
	AuditRetentionDays int
	MinioEnabled       bool
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioBucket        string
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "herbtrace")
	TokenTTL = time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour
	ServerPort = getEnv("SERVER_PORT", "8080")
	IsProduction = getEnv("APP_ENV", "development") == "production"
	LogLevel = getEnv("LOG_LEVEL", "info")

	DbDriver = getEnv("DB_DRIVER", DriverSQLite)
	DbPath = getEnv("DB_PATH", "data.db")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "herbtrace")

	MapSearchURL = getEnv("MAP_SEARCH_URL", "https://www.google.com/maps/search/?api=1&query=")
	PDFFontPath = getEnv("PDF_FONT_PATH", "")
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 365)

	MinioEnabled, _ = strconv.ParseBool(getEnv("MINIO_ENABLED", "false"))
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "herbtrace")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
