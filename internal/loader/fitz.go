package loader

import (
	"context"
	"fmt"

	"document-extraction-service/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzLoader extracts page text with MuPDF. It sits behind the same
// interface as the eino chain and is selected with PDF_ENGINE=fitz.
type FitzLoader struct {
	logger domain.Logger
}

// NewFitzLoader creates a new MuPDF-backed loader
func NewFitzLoader(logger domain.Logger) *FitzLoader {
	return &FitzLoader{logger: logger}
}

// LoadPages returns the text of every page of the PDF at path, in order.
// Extraction is all-or-nothing: a failing page fails the whole load.
func (l *FitzLoader) LoadPages(ctx context.Context, path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		l.logger.Debug("Extracting page text", "page", pageNum+1, "total", numPages)
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
