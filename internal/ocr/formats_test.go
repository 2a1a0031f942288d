package ocr

import (
	"testing"
)

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"screenshot.png", true},
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"slide.webp", true},
		{"scan.tiff", true},
		{"anim.gif", true},
		{"old.bmp", true},
		{"/abs/path/to/slide.PNG", true},
		{"document.pdf", false},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSupportedFormat(tt.path); got != tt.want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSupportedFormatsSortedAndComplete(t *testing.T) {
	formats := SupportedFormats()

	if len(formats) != len(supportedFormats) {
		t.Fatalf("SupportedFormats() returned %d entries, want %d", len(formats), len(supportedFormats))
	}

	for i := 1; i < len(formats); i++ {
		if formats[i-1] >= formats[i] {
			t.Errorf("SupportedFormats() not sorted: %q before %q", formats[i-1], formats[i])
		}
	}
}
