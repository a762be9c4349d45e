package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	OCR     OCRConfig
	Remote  RemoteConfig
	Storage StorageConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

// OCRConfig holds local OCR tool configuration.
type OCRConfig struct {
	Pdftotext     string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	MaxPDFPages   int
}

// RemoteConfig holds the optional server-side extraction endpoints.
// When Endpoint is empty the remote tier is skipped entirely.
type RemoteConfig struct {
	Endpoint            string
	HandwritingEndpoint string
	Timeout             time.Duration
}

// StorageConfig holds snapshot store configuration.
type StorageConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 25<<20),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			MaxPDFPages:   getEnvAsInt("MAX_PDF_PAGES", 20),
		},
		Remote: RemoteConfig{
			Endpoint:            getEnv("EXTRACTION_ENDPOINT", ""),
			HandwritingEndpoint: getEnv("HANDWRITING_ENDPOINT", ""),
			Timeout:             getEnvAsDuration("EXTRACTION_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Path: getEnv("SNAPSHOT_DB_PATH", "./medclaim.db"),
		},
	}
}

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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
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
