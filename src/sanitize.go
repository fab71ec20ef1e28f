package src

import (
	"regexp"
	"strings"
)

var (
	leadingFenceRe  = regexp.MustCompile("^```[a-zA-Z]*\\s*")
	trailingFenceRe = regexp.MustCompile("\\s*```$")
	hashCommentRe   = regexp.MustCompile(`#[^\n]*`)
)

// SanitizeSQL cleans the decoration a model tends to wrap around
// generated SQL: one leading code fence (optionally language-tagged),
// one trailing fence, every #-to-end-of-line comment, and surrounding
// whitespace. Text that matches none of the patterns passes through
// untouched.
func SanitizeSQL(raw string) string {
	sql := leadingFenceRe.ReplaceAllString(raw, "")
	sql = trailingFenceRe.ReplaceAllString(sql, "")
	sql = hashCommentRe.ReplaceAllString(sql, "")
	return strings.TrimSpace(sql)
}
