package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"file-organizer-ai/internal/organizer"
)

// Database drivers.
const (
	DBDriverSQLite = "sqlite"
	DBDriverMySQL  = "mysql"
)

// Classifier backends.
const (
	BackendModel = "model"
	BackendLLM   = "llm"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort string

	DBDriver string
	DBPath   string
	MySQLDSN string

	UploadFolder    string
	ConflictPolicy  organizer.ConflictPolicy
	MaxUploadMemory int64 // bytes

	ClassifierBackend string
	ModelPath         string
	LLMBaseURL        string
	LLMAPIKey         string
	LLMModelName      string
	LLMCategories     []string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load() // Try current directory

	// Walk up to find a project level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:           getEnv("API_PORT", "10000"),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DBDriverSQLite)),
		DBPath:            getEnv("DB_PATH", "./files.db"),
		MySQLDSN:          getEnv("MYSQL_DSN", ""),
		UploadFolder:      getEnv("UPLOAD_FOLDER", "uploads"),
		ClassifierBackend: strings.ToLower(getEnv("CLASSIFIER_BACKEND", BackendModel)),
		ModelPath:         getEnv("MODEL_PATH", "file_classifier.yaml"),
		LLMBaseURL:        getEnv("LLM_BASE_URL", "http://localhost:8080/v1"),
		LLMAPIKey:         getEnv("LLM_API_KEY", "dummy-key"),
		LLMModelName:      getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMCategories:     splitList(getEnv("LLM_CATEGORIES", "Documents,Images,Audio,Videos,Code,Archives,Spreadsheets,Presentations,Others")),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if _, err := strconv.Atoi(cfg.APIPort); err != nil {
		return nil, fmt.Errorf("API_PORT must be a valid integer: %w", err)
	}

	switch cfg.DBDriver {
	case DBDriverSQLite:
	case DBDriverMySQL:
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("MYSQL_DSN is required when DB_DRIVER is %s", DBDriverMySQL)
		}
	default:
		return nil, fmt.Errorf("DB_DRIVER must be %s or %s, got %q", DBDriverSQLite, DBDriverMySQL, cfg.DBDriver)
	}

	switch cfg.ClassifierBackend {
	case BackendModel, BackendLLM:
	default:
		return nil, fmt.Errorf("CLASSIFIER_BACKEND must be %s or %s, got %q", BackendModel, BackendLLM, cfg.ClassifierBackend)
	}
	if cfg.ClassifierBackend == BackendLLM && len(cfg.LLMCategories) == 0 {
		return nil, fmt.Errorf("LLM_CATEGORIES must list at least one category")
	}

	policy, err := organizer.ParseConflictPolicy(getEnv("ORGANIZE_CONFLICT_POLICY", string(organizer.PolicyOverwrite)))
	if err != nil {
		return nil, fmt.Errorf("ORGANIZE_CONFLICT_POLICY: %w", err)
	}
	cfg.ConflictPolicy = policy

	// Parse MAX_UPLOAD_MEMORY_MB
	maxMemoryMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MEMORY_MB", "32"))
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_MEMORY_MB must be a valid integer: %w", err)
	}
	if maxMemoryMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MEMORY_MB must be greater than 0")
	}
	cfg.MaxUploadMemory = int64(maxMemoryMB) << 20

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.DBDriver == DBDriverSQLite {
		// Create the database directory if it doesn't exist
		dataDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
