// Package placeholder discovers, resolves and substitutes {{KEY}} tokens in a project tree.
package placeholder

import (
	"bytes"
	"unicode/utf8"
)

const (
	// NameKey is the reserved key holding the project name.
	NameKey = "NAME"

	// VCSDir is skipped by name when walking a project tree.
	VCSDir = ".git"
)

// Token returns the literal form of key as it appears in a template.
func Token(key string) string {
	return "{{" + key + "}}"
}

// IsBinary reports whether content must be left untouched: it holds a NUL byte or is not valid UTF-8.
func IsBinary(content []byte) bool {
	return bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)
}
