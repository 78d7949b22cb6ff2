package common

import (
	"os"
	"strconv"
	"time"

	"github.com/agrodesk/docextract/constants"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	LLM        LLMConfig
	Worker     WorkerConfig
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
	GRPCAddr    string
	MetricsAddr string
}

// ExtractionConfig carries the pipeline thresholds. It is passed into
// constructors explicitly; pipeline code never reads the environment.
type ExtractionConfig struct {
	ConfidenceThreshold float32 // escalate below this (default 0.7)
	MinFieldCount       int     // escalate below this many fields (default 4)
	MinTextLength       int     // InputError below this many chars (default 20)
	MinLetterRatio      float32 // InputError below this letter share (default 0.4)
	MaxPromptChars      int     // AI tier prompt truncation (default 10000)
	MaxModelRetries     int     // bounded retry on ModelCallError (default 2)
}

// LLMConfig holds completion-service configuration
type LLMConfig struct {
	Model        string
	FallbackModel string // used by explicit "retry with better model"
	APIKey       string
	BaseURL      string
	Temperature  float32
	Timeout      time.Duration
	RatePerSec   float64
}

// WorkerConfig holds backlog worker pool configuration
type WorkerConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
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
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Extraction: ExtractionConfig{
			ConfidenceThreshold: getEnvAsFloat32("CONFIDENCE_THRESHOLD", constants.DefaultConfidenceThreshold),
			MinFieldCount:       getEnvAsInt("MIN_FIELD_COUNT", constants.DefaultMinFieldCount),
			MinTextLength:       getEnvAsInt("MIN_TEXT_LENGTH", constants.DefaultMinTextLength),
			MinLetterRatio:      getEnvAsFloat32("MIN_LETTER_RATIO", constants.DefaultMinLetterRatio),
			MaxPromptChars:      getEnvAsInt("MAX_PROMPT_CHARS", constants.DefaultMaxPromptChars),
			MaxModelRetries:     getEnvAsInt("MAX_MODEL_RETRIES", 2),
		},
		LLM: LLMConfig{
			Model:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			FallbackModel: getEnv("OPENAI_FALLBACK_MODEL", "gpt-4o"),
			APIKey:        getEnv("OPENAI_API_KEY", ""),
			BaseURL:       getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature:   getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			Timeout:       getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			RatePerSec:    getEnvAsFloat64("OPENAI_RATE_PER_SEC", 2),
		},
		Worker: WorkerConfig{
			Workers:        getEnvAsInt("WORKER_COUNT", 4),
			QueueSize:      getEnvAsInt("WORKER_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("WORKER_PROCESS_TIMEOUT", 3*time.Minute),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extraction.ConfidenceThreshold <= 0 || c.Extraction.ConfidenceThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "CONFIDENCE_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	return nil
}
