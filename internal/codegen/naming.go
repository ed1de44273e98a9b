package codegen

import (
	"strings"
	"unicode"
)

// SplitWords splits an identifier into words on separators and case
// boundaries:
//
//	user_accounts -> [user accounts]
//	orderItems    -> [order Items]
//	HTTPServer    -> [HTTP Server]
//	oauth2_token  -> [oauth2 token]
func SplitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// collapseLines joins a multi-line comment into a single line.
func collapseLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
