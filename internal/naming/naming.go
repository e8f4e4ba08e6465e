// Package naming converts Go identifier names to database identifiers.
package naming

import "strings"

// CamelToSnake converts an identifier-style name to snake_case while
// preserving acronym and digit boundaries:
//
//	"CamelCase"    → "camel_case"
//	"HTMLLayout"   → "html_layout"
//	"HTTP2Request" → "http2_request"
//	"UserST4"      → "user_st4"
//
// An uppercase letter starts a new word when it follows a lowercase letter
// or a digit, or when it ends an uppercase run and the next letter is
// lowercase. Existing underscores are kept as boundaries, and lowercase
// runs after digits are never re-split. The transform does no other
// normalization: leading and trailing underscores stay, and only ASCII
// letters are case-folded.
func CamelToSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + len(name)/2)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) && i > 0 {
			if prev := name[i-1]; isLower(prev) || isDigit(prev) {
				b.WriteByte('_')
			} else if i+1 < len(name) && isLower(name[i+1]) {
				b.WriteByte('_')
			}
		}
		b.WriteByte(toLower(c))
	}
	return b.String()
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
