// Package ocr wraps the Tesseract OCR engine (via gosseract/v2) for
// extracting raw text from screenshot and slide images.
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Images are preprocessed (grayscale, conditional upscale) before
// recognition; see ExtractText. The package deliberately returns plain
// text only: interpreting that text is the extractor package's job.
package ocr
