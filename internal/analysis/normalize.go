package analysis

import (
	"regexp"
	"strings"
)

var (
	// Runs of whitespace other than newlines collapse to a single space so
	// that matching is insensitive to PDF extraction artifacts.
	spaceRunRe = regexp.MustCompile(`[^\S\n]+`)

	// A line starting with a bullet marker followed by content.
	bulletLineRe = regexp.MustCompile(`(?m)^ *[-•*] *\S`)

	// A 4-digit year token, or a number immediately followed by % or +.
	quantifiableRe = regexp.MustCompile(`\b\d{4}\b|\d+[%+]`)
)

// normalize case-folds the text, unifies line endings, and collapses runs of
// non-newline whitespace to single spaces. All matching operates on this form.
func normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return spaceRunRe.ReplaceAllString(text, " ")
}

// hasBulletLine reports whether any line begins with -, •, or * followed by content.
func hasBulletLine(normalized string) bool {
	return bulletLineRe.MatchString(normalized)
}

// hasQuantifiableSignal reports whether the text carries a year token or a
// number qualified with % or +.
func hasQuantifiableSignal(normalized string) bool {
	return quantifiableRe.MatchString(normalized)
}

// containsToken performs an approximate word-boundary match: token must appear
// flanked by non-alphanumeric characters or the string's edges. This keeps
// "java" from matching inside "javascript" while still matching tokens that
// themselves contain non-alphanumeric characters, such as "ci/cd".
func containsToken(normalized, token string) bool {
	if token == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(normalized[from:], token)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(token)
		if boundaryAt(normalized, start-1) && boundaryAt(normalized, end) {
			return true
		}
		from = start + 1
	}
}

// boundaryAt reports whether position i is outside the string or holds a
// non-alphanumeric byte.
func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
