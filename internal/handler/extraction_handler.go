// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"

	"document-extraction-service/internal/domain"
	apperrors "document-extraction-service/pkg/errors"
)

// pdfContentType is the only declared content type accepted for extraction.
const pdfContentType = "application/pdf"

// ExtractionHandler handles text extraction HTTP requests
type ExtractionHandler struct {
	extractionService domain.ExtractionService
	logger            domain.Logger
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extractionService domain.ExtractionService, logger domain.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
		logger:            logger,
	}
}

// ExtractPDFText handles POST /extract-pdf-text/. The upload's declared
// content type is validated before anything is staged on disk; on success
// the joined page text is returned as the plain-text body.
func (h *ExtractionHandler) ExtractPDFText(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, apperrors.NewValidationError("File is required"))
		return
	}
	defer file.Close()

	// Declared type only; the file content is never sniffed.
	contentType := header.Header.Get("Content-Type")
	if contentType != pdfContentType {
		writeAppError(w, apperrors.NewValidationError("Only PDF files are supported for extraction."))
		return
	}

	upload := &domain.UploadedFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	}

	doc, err := h.extractionService.ExtractText(r.Context(), upload)
	if err != nil {
		h.logger.Error("Error during PDF text extraction", err, "filename", header.Filename)
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.Text()))
}
