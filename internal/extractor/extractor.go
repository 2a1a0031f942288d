// Package extractor recovers URLs from noisy OCR text.
//
// Tesseract output of a screenshot or slide is messy in two specific
// ways: a long URL wraps across physical lines with no delimiter, and
// visually ambiguous glyphs inside hex identifiers get misread. The
// pipeline here repairs both before matching:
//
//	FindURLs = dedupe ∘ fix ∘ match ∘ rejoin
//
// Rejoining must run before matching (a split URL is invisible to the
// pattern until rejoined) and correction before deduplication (so two
// OCR variants of one true URL collapse to a single entry).
package extractor

import (
	"fmt"
	"os"
	"time"

	"github.com/oshoval/image-link-extractor/internal/ocr"
)

// FindURLs extracts all URLs from OCR text, handling line-wrapped URLs
// and hex misreads. The result is deduplicated in first-occurrence order.
// It is a total function: empty input yields an empty (non-nil) slice.
func FindURLs(text string) []string {
	rejoined := RejoinWrappedLines(text)

	matches := urlPattern.FindAllString(rejoined, -1)

	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		urls = append(urls, FixOCRArtifacts(match))
	}

	return deduplicate(urls)
}

// deduplicate removes exact duplicates while preserving order.
func deduplicate(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	deduped := make([]string, 0, len(urls))

	for _, url := range urls {
		if seen[url] {
			continue
		}

		seen[url] = true
		deduped = append(deduped, url)
	}

	return deduped
}

// Extractor processes images into URL lists using Tesseract OCR.
type Extractor struct {
	options ExtractionOptions
}

// New creates an Extractor with the given options.
func New(options ExtractionOptions) *Extractor {
	if options.Language == "" {
		options.Language = DefaultExtractionOptions().Language
	}

	return &Extractor{options: options}
}

// ProcessImage runs OCR on a single image and mines the recognized text
// for URLs. All failures are reported on the result rather than aborting,
// so a batch caller can keep going.
func (e *Extractor) ProcessImage(path string) *ExtractionResult {
	start := time.Now()

	result := &ExtractionResult{File: path, URLs: []string{}}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		result.Err = &ExtractionError{
			Kind:    ErrorFileNotFound,
			Message: fmt.Sprintf("file not found: %s", path),
		}
		result.ProcessTime = time.Since(start)

		return result
	}

	if !ocr.IsSupportedFormat(path) {
		result.Err = &ExtractionError{
			Kind:    ErrorUnsupportedFormat,
			Message: fmt.Sprintf("unsupported format: %s", path),
		}
		result.ProcessTime = time.Since(start)

		return result
	}

	text, err := ocr.ExtractText(path, e.options.Language)
	if err != nil {
		result.Err = &ExtractionError{
			Kind:    ErrorOCRFailed,
			Message: fmt.Sprintf("OCR failed: %v", err),
		}
		result.ProcessTime = time.Since(start)

		return result
	}

	result.URLs = FindURLs(text)
	if e.options.IncludeText {
		result.Text = text
	}

	result.ProcessTime = time.Since(start)

	return result
}
