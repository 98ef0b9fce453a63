package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken        string
	MediaRoot       string
	ProductPageSize int
	CatalogCacheTTL time.Duration
	Database        DatabaseConfig
	API             APIConfig
	Redis           RedisConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// APIConfig holds admin REST API settings
type APIConfig struct {
	Addr      string
	JWTSecret string
	// RateLimit is the number of requests allowed per client IP per minute
	RateLimit int
}

// Enabled reports whether the REST API should be started
func (c APIConfig) Enabled() bool {
	return c.Addr != ""
}

// RedisConfig holds catalog cache connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether the catalog cache should be used
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	pageSize, err := getEnvInt("PRODUCT_PAGE_SIZE", 10)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvInt("API_RATE_LIMIT", 60)
	if err != nil {
		return nil, err
	}
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		MediaRoot:       getEnv("MEDIA_ROOT", "media"),
		ProductPageSize: pageSize,
		CatalogCacheTTL: cacheTTL,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "shopbot"),
			User:     getEnv("DB_USER", "shopbot"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		API: APIConfig{
			Addr:      os.Getenv("API_ADDR"),
			JWTSecret: os.Getenv("API_JWT_SECRET"),
			RateLimit: rateLimit,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.ProductPageSize < 1 {
		return fmt.Errorf("PRODUCT_PAGE_SIZE must be positive, got %d", c.ProductPageSize)
	}
	if c.API.Enabled() {
		if c.API.JWTSecret == "" {
			return fmt.Errorf("API_JWT_SECRET is required when API_ADDR is set")
		}
		if c.API.RateLimit < 1 {
			return fmt.Errorf("API_RATE_LIMIT must be positive, got %d", c.API.RateLimit)
		}
	}
	if c.Redis.Enabled() && c.CatalogCacheTTL <= 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be positive, got %s", c.CatalogCacheTTL)
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		sslMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
