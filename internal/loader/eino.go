package loader

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/document/loader/file"
	pdfparser "github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document"
)

// Engine names accepted by the PDF_ENGINE setting.
const (
	EngineEino = "eino"
	EngineFitz = "fitz"
)

// EinoLoader loads PDF pages through the eino document pipeline: a file
// loader feeding the PDF parser in per-page mode, so each parsed document
// corresponds to one page of the source file.
type EinoLoader struct {
	loader *file.FileLoader
}

// NewEinoLoader builds the default loader chain. Every file handed to it
// is parsed as PDF regardless of its name.
func NewEinoLoader(ctx context.Context) (*EinoLoader, error) {
	pdfParser, err := pdfparser.NewPDFParser(ctx, &pdfparser.Config{
		ToPages: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create pdf parser: %w", err)
	}

	fileLoader, err := file.NewFileLoader(ctx, &file.FileLoaderConfig{
		UseNameAsID: true,
		Parser:      pdfParser,
	})
	if err != nil {
		return nil, fmt.Errorf("create file loader: %w", err)
	}

	return &EinoLoader{loader: fileLoader}, nil
}

// LoadPages returns the text of every page of the PDF at path, in order.
func (l *EinoLoader) LoadPages(ctx context.Context, path string) (pages []string, err error) {
	// The underlying parser can panic on malformed input; convert that
	// to an error.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	docs, err := l.loader.Load(ctx, document.Source{URI: path})
	if err != nil {
		return nil, err
	}

	pages = make([]string, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, doc.Content)
	}
	return pages, nil
}
