package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Load reads the .env file specified by MCDAXML_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("MCDAXML_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be set.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// ErrorStrategy returns how malformed input is handled.
// Defaults to "collect" if not set.
// Valid values: throw, log, collect
func ErrorStrategy() string {
	s := os.Getenv("MCDAXML_ERROR_STRATEGY")
	if s == "" {
		return "collect"
	}
	return s
}

// AlternativesStrategy returns how alternatives are told apart from profiles.
// Defaults to "auto" if not set.
// Valid values: auto, take_all, seek_concept, use_marking
func AlternativesStrategy() string {
	s := os.Getenv("MCDAXML_ALTERNATIVES_STRATEGY")
	if s == "" {
		return "auto"
	}
	return s
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// DocumentsTable returns the table Postgres sources read from.
// Defaults to "documents" if not set.
func DocumentsTable() string {
	t := os.Getenv("MCDAXML_DOCUMENTS_TABLE")
	if t == "" {
		return "documents"
	}
	return t
}

func S3Bucket() string {
	return os.Getenv("AWS_BUCKET")
}

// S3Region returns the object store region.
// Defaults to "us-east-1" if not set.
func S3Region() string {
	r := os.Getenv("AWS_REGION")
	if r == "" {
		return "us-east-1"
	}
	return r
}

func S3Endpoint() string {
	return os.Getenv("AWS_ENDPOINT")
}

func S3AccessKey() string {
	return os.Getenv("AWS_ACCESS_KEY")
}

func S3SecretKey() string {
	return os.Getenv("AWS_SECRET_KEY")
}

// NewLogger builds a production logger at LogLevel. An unknown level falls back to info.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(LogLevel())
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
