// utils/sanitize.go
package utils

import (
	"html"
	"strings"
)

// SanitizeText cleans free-text input before it is stored: trims whitespace,
// escapes HTML special characters and strips null bytes. Raw markup and
// control bytes must never reach the database.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	text = html.EscapeString(text)
	text = strings.ReplaceAll(text, "\x00", "")
	return text
}
