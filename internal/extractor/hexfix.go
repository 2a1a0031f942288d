package extractor

import (
	"strings"
)

// FixOCRArtifacts corrects common OCR glyph misreads inside a URL's path.
//
// Classical OCR confuses visually similar glyphs (O/0, l/1, S/5). Applying
// the substitution map blindly would corrupt real words ("goal" → "g0a1"),
// so correction is scoped to path segments that statistically look like
// hex identifiers: commit hashes, gist IDs and the like. The host is
// never touched, and only http(s) URLs are split at all; ftp:// and www.
// candidates pass through unchanged.
func FixOCRArtifacts(url string) string {
	match := hostPathPattern.FindStringSubmatch(url)
	if match == nil {
		return url
	}

	host := match[1]
	path := match[2]

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = fixHexSegment(segment)
	}

	// The path either starts with "/" (empty leading segment) or is empty,
	// so joining on "/" reconstructs the original slash placement.
	return host + strings.Join(segments, "/")
}

// fixHexSegment rewrites misread glyphs in a single path segment when the
// segment is long and hex-dense enough to be a hash rather than a word.
// Length and non-mapped characters are always preserved.
func fixHexSegment(segment string) string {
	runes := []rune(segment)
	if len(runes) < minHexSegmentLength {
		return segment
	}

	hexCount := 0
	for _, r := range runes {
		if hexChars[r] {
			hexCount++
		}
	}

	if float64(hexCount)/float64(len(runes)) < hexCharRatioThreshold {
		return segment
	}

	for i, r := range runes {
		if fixed, ok := ocrHexFixes[r]; ok {
			runes[i] = fixed
		}
	}

	return string(runes)
}
