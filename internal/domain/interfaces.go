package domain

import "context"

// DocumentLoader is the external capability that converts a PDF on disk
// into an ordered sequence of per-page text strings. Implementations do
// all substantive parsing work; callers treat them as a black box.
type DocumentLoader interface {
	LoadPages(ctx context.Context, path string) ([]string, error)
}

// ExtractionService defines the use-case operation for text extraction.
type ExtractionService interface {
	ExtractText(ctx context.Context, upload *UploadedFile) (*ExtractedDocument, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetPDFEngine() string
	GetTempDir() string
}
