package extractor

import (
	"regexp"
)

// urlPattern matches URL-shaped tokens in OCR output. A match starts with
// one of four literal prefixes, greedily consumes everything that is not
// whitespace or a delimiter, and must not end on '.' or ':' so sentence
// punctuation stays out of the capture.
var urlPattern = regexp.MustCompile(
	`(?:https?://|ftp://|www\.)` + // scheme or www.
		`[^\s<>"')\]},;!]*` + // URL body (greedy, stops at whitespace/delimiters)
		`[^\s<>"')\]},;!.:]`) // don't end on trailing punctuation

// hostPathPattern splits an http(s) URL into authority and path. Other
// schemes are left alone by the corrector.
var hostPathPattern = regexp.MustCompile(`^(https?://[^/]+)(.*)$`)

// bulletPrefixes are glyphs that mark list items in slide text. A line
// starting with one of these is never a URL continuation.
var bulletPrefixes = []string{"*", "-", "•", "●", "+"}

// urlChars are characters valid inside a URL (RFC 3986 plus common extras).
var urlChars = makeRuneSet(`/-_.~:?#[]@!$&'()*+,;=%`)

// hexChars are the valid hexadecimal digits.
var hexChars = makeRuneSet("0123456789abcdefABCDEF")

// ocrHexFixes maps glyphs Tesseract commonly misreads inside hex-heavy
// strings to their most likely hex digit.
var ocrHexFixes = map[rune]rune{
	'O': '0',
	'Q': '0',
	'l': '1',
	'I': '1',
	'S': '5',
	'G': '6',
}

// URL continuation heuristic thresholds.
const (
	urlCharRatioThreshold = 0.85
	minContinuationLength = 5
)

// Hex segment detection thresholds.
const (
	minHexSegmentLength   = 8
	hexCharRatioThreshold = 0.7
)

func makeRuneSet(chars string) map[rune]bool {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}

	return set
}
