package extractor

import (
	"time"
)

// ErrorKind classifies why a single image could not be processed.
type ErrorKind string

const (
	ErrorFileNotFound      ErrorKind = "file_not_found"
	ErrorUnsupportedFormat ErrorKind = "unsupported_format"
	ErrorOCRFailed         ErrorKind = "ocr_failed"
)

// ExtractionError is a per-image failure. Failures are recoverable: a bad
// image never aborts the rest of a batch.
type ExtractionError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return e.Message
}

// ExtractionResult is the outcome of processing one image: either the
// deduplicated URL list (plus the raw OCR text it was mined from), or a
// classified error.
type ExtractionResult struct {
	File        string           `json:"file"`
	URLs        []string         `json:"urls"`
	Text        string           `json:"text,omitempty"`
	Err         *ExtractionError `json:"error,omitempty"`
	ProcessTime time.Duration    `json:"process_time"`
}

// OK reports whether the image was processed successfully.
func (r *ExtractionResult) OK() bool {
	return r.Err == nil
}

// ExtractionOptions configures image processing.
type ExtractionOptions struct {
	// Language is the Tesseract language code (e.g. "eng").
	Language string `json:"language"`

	// IncludeText keeps the raw OCR text on the result for debugging.
	IncludeText bool `json:"include_text"`
}

// DefaultExtractionOptions returns the default processing options.
func DefaultExtractionOptions() ExtractionOptions {
	return ExtractionOptions{
		Language:    "eng",
		IncludeText: true,
	}
}
