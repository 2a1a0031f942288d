package extractor

import (
	"strings"
	"unicode"
)

// RejoinWrappedLines merges URL tails that OCR split onto their own line
// back onto the line carrying the URL.
//
// When a long URL wraps inside an image, Tesseract emits two physical
// lines with no delimiter:
//
//	https://example.com/abc123
//	def456ghi
//
// A line is merged into its predecessor only when the predecessor already
// contains a URL match and the line itself is composed almost entirely of
// URL-safe characters. Non-joined lines pass through untouched, so the
// function is idempotent on text without continuations.
func RejoinWrappedLines(text string) string {
	lines := strings.Split(text, "\n")
	merged := make([]string, 0, len(lines))

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if shouldJoinToPrevious(merged, stripped) {
			merged[len(merged)-1] = strings.TrimRightFunc(merged[len(merged)-1], unicode.IsSpace) + stripped
		} else {
			merged = append(merged, line)
		}
	}

	return strings.Join(merged, "\n")
}

// shouldJoinToPrevious reports whether a stripped line belongs to the URL
// on the previous merged line.
func shouldJoinToPrevious(merged []string, stripped string) bool {
	if len(merged) == 0 || stripped == "" {
		return false
	}

	if !urlPattern.MatchString(merged[len(merged)-1]) {
		return false
	}

	for _, bullet := range bulletPrefixes {
		if strings.HasPrefix(stripped, bullet) {
			return false
		}
	}

	return looksLikeURLContinuation(stripped)
}

// looksLikeURLContinuation is the heuristic for "this line is the tail of
// a wrapped URL, not the next sentence". It accepts lines that are mostly
// URL-valid characters, contain no interior spaces, and are at least
// minContinuationLength runes long after trailing punctuation is removed.
func looksLikeURLContinuation(line string) bool {
	cleaned := strings.TrimRight(strings.TrimSpace(line), ".,;:!? ")
	if cleaned == "" {
		return false
	}

	if strings.Contains(cleaned, " ") {
		return false
	}

	runes := []rune(cleaned)

	urlCharCount := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || urlChars[r] {
			urlCharCount++
		}
	}

	ratio := float64(urlCharCount) / float64(len(runes))

	return ratio >= urlCharRatioThreshold && len(runes) >= minContinuationLength
}
