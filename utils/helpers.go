package utils

import (
	"net/http"
	"strings"
	"unicode/utf8"
)

// Truncate cuts s to at most n characters and reports whether anything was cut.
func Truncate(s string, n int) (string, bool) {
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:n]), true
}

// GetUserID reads the user_id query parameter. An absent parameter yields "".
func GetUserID(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("user_id"))
}
