package extractor

import (
	"strings"
	"testing"
)

func TestLooksLikeURLContinuation(t *testing.T) {
	accepted := []string{
		"0aeba2f424949c54d975f9fe78c",
		"project/tree/main",
		"index.html?q=foo",
		"v2/status/health",
		"abc123def456ghi789",
	}

	for _, line := range accepted {
		if !looksLikeURLContinuation(line) {
			t.Errorf("expected %q to be recognized as URL continuation", line)
		}
	}

	rejected := []string{
		"This is a normal sentence about something.",
		"- bullet point item",
		"• another bullet point",
		"● yet another bullet",
		"* starred item",
		"",
		"    ",
		"hi", // too short
	}

	for _, line := range rejected {
		if looksLikeURLContinuation(line) {
			t.Errorf("expected %q to be rejected as URL continuation", line)
		}
	}
}

func TestRejoinWrappedLines(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		contains  string
		wantLines int
	}{
		{
			name:      "joins hex continuation",
			input:     "POC link: https://gist.github.com/user/9611a\n0aeba2f424949c54d975f9fe78c",
			contains:  "https://gist.github.com/user/9611a0aeba2f424949c54d975f9fe78c",
			wantLines: 1,
		},
		{
			name:      "joins path continuation",
			input:     "Repo: https://github.com/org/example-\nproject/tree/main",
			contains:  "https://github.com/org/example-project/tree/main",
			wantLines: 1,
		},
		{
			name:      "does not join normal text",
			input:     "Visit https://example.com for details.\nThis is a normal next line.",
			contains:  "This is a normal next line.",
			wantLines: 2,
		},
		{
			name:      "does not join bullet points",
			input:     "Link: https://example.com/path\n- Next bullet point",
			contains:  "- Next bullet point",
			wantLines: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RejoinWrappedLines(tt.input)

			if !strings.Contains(result, tt.contains) {
				t.Errorf("RejoinWrappedLines(%q) = %q, missing %q", tt.input, result, tt.contains)
			}

			if got := len(strings.Split(result, "\n")); got != tt.wantLines {
				t.Errorf("RejoinWrappedLines(%q) has %d lines, want %d", tt.input, got, tt.wantLines)
			}
		})
	}
}

func TestRejoinWrappedLinesPassThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no URLs", input: "Just some text\nwith multiple lines\nand no URLs."},
		{name: "empty string", input: ""},
		{name: "whitespace lines", input: "https://example.com/path\n   \nnext paragraph here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RejoinWrappedLines(tt.input); got != tt.input {
				t.Errorf("RejoinWrappedLines(%q) = %q, want unchanged", tt.input, got)
			}
		})
	}
}

func TestRejoinWrappedLinesIdempotent(t *testing.T) {
	input := "POC link: https://gist.github.com/user/9611a\n0aeba2f424949c54d975f9fe78c"

	once := RejoinWrappedLines(input)
	twice := RejoinWrappedLines(once)

	if once != twice {
		t.Errorf("rejoining its own output changed the text: %q vs %q", once, twice)
	}
}
