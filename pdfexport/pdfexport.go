// Package pdfexport renders QA reports and test plans as PDF documents.
package pdfexport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"

	"github.com/go-pdf/fpdf"
	"github.com/hairizuanbinnoorazman/qa-workbench/metrics"
	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
)

// ContentType is the MIME type of rendered documents.
const ContentType = "application/pdf"

// ArchivePrefix is the blob storage folder archived artifacts go to.
const ArchivePrefix = "exports"

// ErrRender wraps layout and encoding failures.
var ErrRender = errors.New("failed to render pdf")

// Artifact is a generated, named document ready for download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

var whitespace = regexp.MustCompile(`\s+`)

// SafeName replaces every whitespace run in s with an underscore.
func SafeName(s string) string {
	return whitespace.ReplaceAllString(s, "_")
}

// Archive stores a copy of a under ArchivePrefix and returns its location.
func Archive(ctx context.Context, blobs storage.BlobStorage, a *Artifact) (string, error) {
	key := path.Join(ArchivePrefix, a.Filename)
	if err := blobs.Put(ctx, key, bytes.NewReader(a.Data), a.ContentType); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", a.Filename, err)
	}
	return blobs.URL(ctx, key)
}

func output(pdf *fpdf.Fpdf, format string) ([]byte, error) {
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	metrics.Exports.WithLabelValues(format).Inc()
	return buf.Bytes(), nil
}
