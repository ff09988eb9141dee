package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the expohall backend
type Config struct {
	// Server configuration
	Port         string
	GinMode      string
	APIPrefix    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// JWT configuration
	JWT JWTConfig

	// Kafka configuration
	Kafka KafkaConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL for the cached booth list
	BoothCacheTTL time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

// KafkaConfig holds Kafka configuration for reservation events
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled             bool
	WindowDuration      time.Duration
	AuthRequests        int
	ReservationRequests int
	DefaultRequests     int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		APIPrefix:    getEnv("API_PREFIX", "/api"),
		ReadTimeout:  getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getEnvDuration("IDLE_TIMEOUT", 60*time.Second),

		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "expohall"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		Redis: RedisConfig{
			Host:          getEnv("REDIS_HOST", "localhost"),
			Port:          getEnv("REDIS_PORT", "6379"),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvInt("REDIS_DB", 0),
			BoothCacheTTL: getEnvDuration("BOOTH_CACHE_TTL", 30*time.Second),
		},

		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", "expohall-dev-secret"),
			ExpiresIn: getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour),
		},

		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_RESERVATION_TOPIC", "reservation-events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "expohall-notification-workers"),
		},

		RateLimit: RateLimitConfig{
			Enabled:             getEnvBool("RATE_LIMIT_ENABLED", false),
			WindowDuration:      getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			AuthRequests:        getEnvInt("RATE_LIMIT_AUTH_REQUESTS", 20),
			ReservationRequests: getEnvInt("RATE_LIMIT_RESERVATION_REQUESTS", 30),
			DefaultRequests:     getEnvInt("RATE_LIMIT_DEFAULT_REQUESTS", 120),
		},

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Build derived values
	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode,
	)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// IsDevelopment returns true when gin runs in debug mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the listen address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API route prefix
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
