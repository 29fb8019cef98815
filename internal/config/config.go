package config

import (
	"os"
	"strconv"
	"time"
)

const (
	SunProviderLocal = "local"
	SunProviderAPI   = "api"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
		LogLevel    string
	}
	DB struct {
		Driver   string
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		Debug    bool
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Feeds struct {
		SunProvider string
		SunURL      string
		MoonURL     string
		Timeout     time.Duration
	}
	Cache struct {
		FeedTTL   time.Duration
		ReportTTL time.Duration
	}
	Workers struct {
		ReportEnabled     bool
		ReportInterval    time.Duration
		CleanupEnabled    bool
		CleanupInterval   time.Duration
		SnapshotRetention time.Duration
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
		PerIPPerSecond    float64
		PerIPBurst        int
	}
	Minio struct {
		Enabled   bool
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	// DB
	cfg.DB.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", defaultDBPort(cfg.DB.Driver))
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.DB.DBName = getEnv("DB_NAME", "deepsky")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.Debug = cfg.App.Debug

	// Redis
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	// Feeds
	cfg.Feeds.SunProvider = getEnv("SUN_PROVIDER", SunProviderLocal)
	cfg.Feeds.SunURL = getEnv("SUN_API_URL", "https://api.sunrise-sunset.org")
	cfg.Feeds.MoonURL = getEnv("MOON_API_URL", "https://aa.usno.navy.mil/api")
	cfg.Feeds.Timeout = getEnvAsDuration("FEED_TIMEOUT", 15*time.Second)

	// Cache
	cfg.Cache.FeedTTL = getEnvAsDuration("CACHE_FEED_TTL", 6*time.Hour)
	cfg.Cache.ReportTTL = getEnvAsDuration("CACHE_REPORT_TTL", time.Hour)

	// Workers
	cfg.Workers.ReportEnabled = getEnvAsBool("REPORT_WORKER_ENABLED", true)
	cfg.Workers.ReportInterval = getEnvAsDuration("WORKER_REPORT_INTERVAL", 30*time.Minute)
	cfg.Workers.CleanupEnabled = getEnvAsBool("CLEANUP_WORKER_ENABLED", true)
	cfg.Workers.CleanupInterval = getEnvAsDuration("WORKER_CLEANUP_INTERVAL", 24*time.Hour)
	cfg.Workers.SnapshotRetention = getEnvAsDuration("SNAPSHOT_RETENTION", 30*24*time.Hour)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)
	cfg.RateLimit.PerIPPerSecond = getEnvAsFloat("RATE_LIMIT_IP_RPS", 2)
	cfg.RateLimit.PerIPBurst = getEnvAsInt("RATE_LIMIT_IP_BURST", 5)

	// MinIO
	cfg.Minio.Enabled = getEnvAsBool("MINIO_ENABLED", false)
	cfg.Minio.Endpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	cfg.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	cfg.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	cfg.Minio.Bucket = getEnv("MINIO_BUCKET", "deepsky-reports")
	cfg.Minio.UseSSL = getEnvAsBool("MINIO_USE_SSL", false)

	return cfg
}

func defaultDBPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
