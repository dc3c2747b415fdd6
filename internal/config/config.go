package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	DB        DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Worker    WorkerConfig
	S3        S3Config
	AWS       AWSConfig
	Pressroom PressroomConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CacheConfig contains TTLs for cached API responses.
type CacheConfig struct {
	CatalogTTL time.Duration
	QuoteTTL   time.Duration
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	GangBatchInterval   time.Duration
	ArtworkScanInterval time.Duration
}

// S3Config contains object storage configuration for artwork files.
type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// AWSConfig contains AWS general configuration.
type AWSConfig struct {
	AccessKeyID       string
	SecretAccessKey   string
	RekognitionRegion string
}

// PressroomConfig contains credentials for the gang-run print facility API.
type PressroomConfig struct {
	BaseURL    string
	FacilityID string
	APISecret  string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// S3 (artwork storage)
	cfg.S3 = S3Config{
		Region:          getEnv("S3_REGION", "us-east-1"),
		Bucket:          getEnv("S3_BUCKET", "printdeck-artwork"),
		Endpoint:        getEnv("S3_ENDPOINT", "https://s3.us-east-1.amazonaws.com"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}

	// AWS General (Rekognition moderation)
	cfg.AWS = AWSConfig{
		AccessKeyID:       getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		RekognitionRegion: getEnv("AWS_REKOGNITION_REGION", "us-east-1"),
	}

	// Pressroom (gang-run facility)
	cfg.Pressroom = PressroomConfig{
		BaseURL:    getEnv("PRESSROOM_BASE_URL", ""),
		FacilityID: getEnv("PRESSROOM_FACILITY_ID", ""),
		APISecret:  getEnv("PRESSROOM_API_SECRET", ""),
	}

	// Cache TTLs & worker intervals (durations)
	var err error
	if cfg.Cache.CatalogTTL, err = parseDurationEnv("CATALOG_CACHE_TTL", "5m"); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}
	if cfg.Cache.QuoteTTL, err = parseDurationEnv("QUOTE_CACHE_TTL", "10m"); err != nil {
		return nil, fmt.Errorf("invalid QUOTE_CACHE_TTL: %w", err)
	}
	if cfg.Worker.GangBatchInterval, err = parseDurationEnv("GANG_BATCH_INTERVAL", "5m"); err != nil {
		return nil, fmt.Errorf("invalid GANG_BATCH_INTERVAL: %w", err)
	}
	if cfg.Worker.ArtworkScanInterval, err = parseDurationEnv("ARTWORK_SCAN_INTERVAL", "30s"); err != nil {
		return nil, fmt.Errorf("invalid ARTWORK_SCAN_INTERVAL: %w", err)
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	// Validate JWT_SECRET
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
