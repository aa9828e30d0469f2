// Package parser defines the Parser interface implemented by the TypeScript
// and JSON adapters and selects the right one for a file.
package parser

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/ngpatch/pkg/langdetect"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/parser/typescript"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// ErrUnsupportedLanguage is returned when no parser handles a file.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Parser parses source content into a SourceFile.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw bytes into a SourceFile.
	//
	// Parameters:
	//   - ctx: context for cancellation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw bytes (must not be mutated by the implementation).
	//
	// The returned SourceFile must satisfy:
	//   - file.Path == path
	//   - file.Root != nil
	//   - all nodes have node.File == file
	Parse(ctx context.Context, path string, content []byte) (*srcast.SourceFile, error)
}

// ForPath returns the parser for the file at path. Well-known extensions are
// mapped directly; anything else goes through language detection.
func ForPath(path string, content []byte) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return typescript.New(), nil
	case ".tsx":
		return typescript.NewTSX(), nil
	case ".json":
		return jsonast.New(), nil
	}

	switch lang := langdetect.Detect(path, content); lang {
	case langdetect.TypeScript:
		return typescript.New(), nil
	case langdetect.JSON:
		return jsonast.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}
}

// Parse is a convenience that selects a parser with ForPath and runs it.
func Parse(ctx context.Context, path string, content []byte) (*srcast.SourceFile, error) {
	p, err := ForPath(path, content)
	if err != nil {
		return nil, err
	}

	file, err := p.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file, nil
}
