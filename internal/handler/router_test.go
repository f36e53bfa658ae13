package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"document-extraction-service/internal/domain"
	apperrors "document-extraction-service/pkg/errors"
)

func TestNewRouter_Health(t *testing.T) {
	svc := &MockExtractionService{doc: &domain.ExtractedDocument{Pages: []string{"x"}}}
	router := NewRouter(NewExtractionHandler(svc, NewMockHandlerLogger()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if payload["message"] != "Document Extraction Service is running!" {
		t.Fatalf("unexpected health message: %q", payload["message"])
	}
}

func TestNewRouter_ExtractRoute(t *testing.T) {
	svc := &MockExtractionService{doc: &domain.ExtractedDocument{Pages: []string{"First.", "Second."}}}
	router := NewRouter(NewExtractionHandler(svc, NewMockHandlerLogger()))

	req := newExtractRequest(t, "report.pdf", "application/pdf", []byte("%PDF-1.4"))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := rr.Body.String(); got != "First.\nSecond." {
		t.Errorf("unexpected response body: %q", got)
	}
}

func TestNewRouter_ExtractRoute_MethodNotAllowed(t *testing.T) {
	svc := &MockExtractionService{}
	router := NewRouter(NewExtractionHandler(svc, NewMockHandlerLogger()))

	req := httptest.NewRequest(http.MethodGet, "/extract-pdf-text/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}

// TestNewRouter_HealthAfterFailure verifies the health check stays fixed
// regardless of prior extraction outcomes.
func TestNewRouter_HealthAfterFailure(t *testing.T) {
	svc := &MockExtractionService{
		err: apperrors.NewProcessingError("Failed to extract text from PDF: boom", nil),
	}
	router := NewRouter(NewExtractionHandler(svc, NewMockHandlerLogger()))

	extractReq := newExtractRequest(t, "broken.pdf", "application/pdf", []byte("garbage"))
	extractRR := httptest.NewRecorder()
	router.ServeHTTP(extractRR, extractReq)
	if extractRR.Code != http.StatusInternalServerError {
		t.Fatalf("expected extraction to fail with %d, got %d", http.StatusInternalServerError, extractRR.Code)
	}

	healthReq := httptest.NewRequest(http.MethodGet, "/", nil)
	healthRR := httptest.NewRecorder()
	router.ServeHTTP(healthRR, healthReq)

	if healthRR.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, healthRR.Code)
	}
}
