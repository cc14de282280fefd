package sqlguard

import (
	"regexp"
	"strings"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`--[^\n]*`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Normalized is the canonical form of a submitted query: comments stripped,
// whitespace collapsed, upper-cased, plus the number of non-empty
// `;`-separated statements found in the submission.
type Normalized struct {
	Text       string
	Statements int
}

// Normalize produces the canonical form used for pattern matching.
// Comment stripping happens before the delimiter split so a `;` inside a
// comment never counts as a statement separator. Normalize is pure and
// idempotent: Normalize(Normalize(s).Text) yields the same result.
func Normalize(raw string) Normalized {
	stripped := blockCommentRe.ReplaceAllString(raw, " ")
	stripped = lineCommentRe.ReplaceAllString(stripped, " ")
	collapsed := strings.TrimSpace(whitespaceRe.ReplaceAllString(stripped, " "))

	count := 0
	for _, part := range strings.Split(collapsed, ";") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}

	return Normalized{
		Text:       strings.ToUpper(collapsed),
		Statements: count,
	}
}
