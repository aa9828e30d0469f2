// Package langdetect decides which grammar should parse a file.
// It uses go-enry to classify files by name and, when the name is ambiguous
// or unknown, by content.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Languages reported by Detect.
const (
	TypeScript = "typescript"
	JSON       = "json"
	Unknown    = ""
)

// candidates restricts the content classifier to grammars we can parse plus
// the usual impostors for the same extensions (.ts is also Qt Linguist XML).
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{"TypeScript", "TSX", "JavaScript", "JSON", "JSON with Comments", "XML"}

// Detect returns the language of the file at path with the given content.
// Returns Unknown when the file is neither TypeScript nor JSON.
func Detect(path string, content []byte) string {
	base := filepath.Base(path)

	// Strategy 1: well-known filenames (tsconfig.json, .babelrc, ...).
	if lang, safe := enry.GetLanguageByFilename(base); safe && lang != "" {
		return normalize(lang)
	}

	// Strategy 2: unambiguous extension.
	if lang, safe := enry.GetLanguageByExtension(base); safe && lang != "" {
		return normalize(lang)
	}

	// Strategy 3: classifier over the extension's candidates, or all of ours.
	pool := enry.GetLanguagesByExtension(base, content, nil)
	if len(pool) == 0 {
		pool = candidates
	}
	if len(content) > 0 {
		if lang, safe := enry.GetLanguageByClassifier(content, pool); safe && lang != "" {
			return normalize(lang)
		}
	}

	// Strategy 4: JSON is easy to recognise on its own.
	if looksLikeJSON(content) {
		return JSON
	}

	return Unknown
}

// looksLikeJSON checks for a leading brace or bracket and a quoted string.
func looksLikeJSON(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

// normalize converts go-enry language names to the names used by the parsers.
func normalize(lang string) string {
	switch lang {
	case "TypeScript", "TSX":
		return TypeScript
	case "JSON", "JSON with Comments", "JSON5":
		return JSON
	default:
		return strings.ToLower(lang)
	}
}
