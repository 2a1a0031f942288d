package ocr

import (
	"fmt"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Image preprocessing thresholds. Small screenshots recognize noticeably
// better after upscaling; large ones are left alone.
const (
	minWidthForUpscale = 1000
	upscaleFactor      = 2
)

// ExtractText runs Tesseract OCR on an image file and returns the raw
// recognized text.
//
// The image is preprocessed before recognition: converted to grayscale,
// and Lanczos-upscaled 2x when narrower than 1000 px. Recognition uses
// page segmentation mode 6 (single uniform block of text), which suits
// screenshots and slides better than the default page analysis.
func ExtractText(imagePath, language string) (string, error) {
	srcPath, cleanup, err := preprocess(imagePath)
	if err != nil {
		return "", err
	}
	defer cleanup()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImage(srcPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}

// preprocess loads and normalizes an image for OCR, writing the result to
// a temporary PNG (Tesseract wants a file path). The returned cleanup
// removes the temporary file.
//
// If the image cannot be decoded here (e.g. WebP, which Tesseract's
// Leptonica reads but Go's decoders do not), the original path is handed
// to Tesseract unmodified.
func preprocess(imagePath string) (string, func(), error) {
	img, err := imaging.Open(imagePath)
	if err != nil {
		return imagePath, func() {}, nil
	}

	gray := imaging.Grayscale(img)

	bounds := gray.Bounds()
	if bounds.Dx() < minWidthForUpscale {
		gray = imaging.Resize(gray, bounds.Dx()*upscaleFactor, bounds.Dy()*upscaleFactor, imaging.Lanczos)
	}

	tmpFile, err := os.CreateTemp("", "ocr-input-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := png.Encode(tmpFile, gray); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)

		return "", nil, fmt.Errorf("failed to encode preprocessed image: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)

		return "", nil, fmt.Errorf("failed to write preprocessed image: %w", err)
	}

	return tmpPath, func() { os.Remove(tmpPath) }, nil
}

// Version returns the installed Tesseract version.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()

	return client.Version()
}
