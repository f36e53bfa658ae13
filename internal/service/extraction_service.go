package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"document-extraction-service/internal/domain"
	apperrors "document-extraction-service/pkg/errors"

	"github.com/google/uuid"
)

// ExtractionService stages uploads in per-request workspaces and delegates
// text extraction to the configured document loader.
type ExtractionService struct {
	loader  domain.DocumentLoader
	logger  domain.Logger
	tempDir string
}

func NewExtractionService(loader domain.DocumentLoader, logger domain.Logger, tempDir string) *ExtractionService {
	return &ExtractionService{
		loader:  loader,
		logger:  logger,
		tempDir: tempDir,
	}
}

// ExtractText copies the upload into a fresh workspace, runs the loader on
// it and returns the per-page text. The workspace is removed on every exit
// path, success or failure.
func (s *ExtractionService) ExtractText(ctx context.Context, upload *domain.UploadedFile) (*domain.ExtractedDocument, error) {
	workspace := filepath.Join(s.tempDir, uuid.New().String())
	if err := os.MkdirAll(workspace, 0o700); err != nil {
		return nil, processingError(err)
	}
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			s.logger.Warn("Failed to remove workspace", "workspace", workspace, "error", err)
		}
	}()

	// The upload is staged under its declared filename, unmodified.
	path := filepath.Join(workspace, upload.Filename)
	if err := writeUpload(path, upload.Content); err != nil {
		return nil, processingError(err)
	}

	s.logger.Debug("Upload staged for extraction", "path", path, "size", upload.Size)

	pages, err := s.loader.LoadPages(ctx, path)
	if err != nil {
		return nil, processingError(err)
	}

	doc := &domain.ExtractedDocument{Pages: pages}
	s.logger.Info("PDF text extracted", "filename", upload.Filename, "pages", doc.PageCount())
	return doc, nil
}

// writeUpload copies the upload stream to path.
func writeUpload(path string, content io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, content)
	return err
}

// processingError wraps a failure in the client-facing shape, keeping the
// underlying error's text in the message.
func processingError(err error) *apperrors.AppError {
	return apperrors.NewProcessingError(fmt.Sprintf("Failed to extract text from PDF: %v", err), err)
}
