package ocr

import (
	"path/filepath"
	"sort"
	"strings"
)

// supportedFormats are the image extensions accepted for OCR.
var supportedFormats = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// IsSupportedFormat reports whether the file's extension is a supported
// image format. The check is by extension only; decoding errors surface
// later from the OCR engine.
func IsSupportedFormat(path string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(path))]
}

// SupportedFormats returns the accepted extensions in sorted order, for
// help text and error messages.
func SupportedFormats() []string {
	formats := make([]string, 0, len(supportedFormats))
	for ext := range supportedFormats {
		formats = append(formats, ext)
	}

	sort.Strings(formats)

	return formats
}
