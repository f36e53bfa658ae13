package config

import (
	"os"

	"document-extraction-service/internal/domain"
)

// Service metadata reported at startup.
const (
	ServiceTitle       = "Document Extraction Service"
	ServiceDescription = "API for extracting text from documents using LangChain."
	ServiceVersion     = "1.0.0"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort string
	LogLevel   string
	PDFEngine  string
	TempDir    string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort: getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		PDFEngine:  getEnvOrDefault("PDF_ENGINE", "eino"),
		TempDir:    getEnvOrDefault("TEMP_DIR", os.TempDir()),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFEngine returns the configured PDF extraction engine
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetTempDir returns the scratch root for per-request workspaces
func (c *AppConfig) GetTempDir() string {
	return c.TempDir
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
