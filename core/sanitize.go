package core

import (
	"strings"
	"unicode/utf8"
)

// MaxValueLen caps the length of a single written value in characters,
// bounding the size of any one engine command.
const MaxValueLen = 2000

// Sanitize normalizes a value before it is handed to the engine: strips
// NUL bytes (they break the engine's line-oriented command stream),
// folds CRLF and bare CR to LF, trims surrounding whitespace, and
// truncates to MaxValueLen characters. Truncation counts runes, not
// bytes, so a multi-byte character is never split into invalid UTF-8.
// Sanitize is idempotent. A value that comes back empty is treated as
// absent and must not be written.
func Sanitize(value string) string {
	value = strings.ReplaceAll(value, "\x00", "")
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxValueLen {
		runes := []rune(value)
		value = strings.TrimSpace(string(runes[:MaxValueLen]))
	}
	return value
}
