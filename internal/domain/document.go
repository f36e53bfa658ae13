package domain

import (
	"io"
	"strings"
)

// UploadedFile represents an incoming file upload for the duration of one
// request. Content is the unread multipart stream; nothing is persisted
// beyond request completion.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ExtractedDocument holds the per-page text produced by a document loader,
// in page order.
type ExtractedDocument struct {
	Pages []string
}

// Text joins all page texts with a single newline between consecutive
// pages. No separator is added before the first or after the last page.
func (d *ExtractedDocument) Text() string {
	return strings.Join(d.Pages, "\n")
}

// PageCount returns the number of extracted pages.
func (d *ExtractedDocument) PageCount() int {
	return len(d.Pages)
}
