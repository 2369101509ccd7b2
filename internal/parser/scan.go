package parser

import (
	"regexp"
	"strings"
)

// listItemRe matches "12." style numbered items of any width.
var listItemRe = regexp.MustCompile(`^\d+\.`)

// eachLine calls fn for every non-blank line of text, trimmed.
func eachLine(text string, fn func(line string)) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fn(line)
	}
}

// indexFold returns the byte offset of the first case-insensitive match of
// an ASCII marker in s, or -1.
func indexFold(s, marker string) int {
	n := len(marker)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], marker) {
			return i
		}
	}
	return -1
}

func containsFold(s, marker string) bool {
	return indexFold(s, marker) >= 0
}

func containsAnyFold(s string, markers ...string) bool {
	for _, m := range markers {
		if containsFold(s, m) {
			return true
		}
	}
	return false
}

// isListItem reports whether line is a dashed, bulleted or numbered item.
func isListItem(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || listItemRe.MatchString(line)
}

// valueAfterColon returns the trimmed text after the first colon, or "".
func valueAfterColon(line string) string {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
