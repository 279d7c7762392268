package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Importer ImporterConfig
	Logos    LogosConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ImporterConfig holds batch import tuning knobs
type ImporterConfig struct {
	ChunkSize           int
	ChunkDelay          time.Duration
	ProgressInterval    time.Duration
	KeywordThreshold    float64
	SimilarityThreshold float64
	SheetName           string
}

// LogosConfig holds institution registry configuration
type LogosConfig struct {
	RegistryPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Importer: ImporterConfig{
			ChunkSize:           getEnvAsInt("IMPORT_CHUNK_SIZE", 50),
			ChunkDelay:          getEnvAsDuration("IMPORT_CHUNK_DELAY", 100*time.Millisecond),
			ProgressInterval:    getEnvAsDuration("IMPORT_PROGRESS_INTERVAL", 2*time.Second),
			KeywordThreshold:    getEnvAsFloat64("IMPORT_KEYWORD_THRESHOLD", 3),
			SimilarityThreshold: getEnvAsFloat64("IMPORT_SIMILARITY_THRESHOLD", 0.5),
			SheetName:           getEnv("IMPORT_SHEET", "smartjects"),
		},
		Logos: LogosConfig{
			RegistryPath: getEnv("LOGOS_REGISTRY_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Importer.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "IMPORT_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
