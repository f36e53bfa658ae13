package config

import (
	"context"
	"fmt"

	"document-extraction-service/internal/domain"
	"document-extraction-service/internal/loader"
	"document-extraction-service/internal/service"
	"document-extraction-service/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Loader            domain.DocumentLoader
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container. Exactly one
// loader engine is constructed per process, selected by PDF_ENGINE.
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	documentLoader, err := newDocumentLoader(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	extractionService := service.NewExtractionService(documentLoader, appLogger, cfg.GetTempDir())

	return &Container{
		Config:            cfg,
		Logger:            appLogger,
		Loader:            documentLoader,
		ExtractionService: extractionService,
	}, nil
}

func newDocumentLoader(cfg domain.Config, appLogger domain.Logger) (domain.DocumentLoader, error) {
	switch engine := cfg.GetPDFEngine(); engine {
	case loader.EngineEino:
		return loader.NewEinoLoader(context.Background())
	case loader.EngineFitz:
		return loader.NewFitzLoader(appLogger), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEngine, engine)
	}
}
