// Package jsonast parses JSON with github.com/tailscale/hujson and maps the
// result into srcast trees with byte spans for every value, key and
// punctuation token.
package jsonast

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/tailscale/hujson"

	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// Language is the SourceFile.Language value set by this parser.
const Language = "json"

// Parser implements parser.Parser for JSON. By default only standard JSON
// (RFC 8259) is accepted. It holds no mutable state and is safe for
// concurrent use.
type Parser struct {
	extensions bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithExtensions accepts comments and trailing commas, as found in
// tslint.json and tsconfig.json. Comments become comment nodes.
func WithExtensions() Option {
	return func(p *Parser) {
		p.extensions = true
	}
}

// New creates a JSON parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts raw JSON bytes into a SourceFile whose Root is a document
// node with exactly one value child.
//
// Returns nil and a *SyntaxError if the content is not valid JSON.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*srcast.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	file := srcast.NewSourceFile(path, content)
	file.Language = Language

	value, err := hujson.Parse(content)
	if err != nil {
		return nil, fromHuJSON(file, err)
	}

	m := &mapper{src: content, extension: -1}
	root := m.document(&value)

	if !p.extensions && !value.IsStandard() {
		offset, msg := max(m.extension, 0), m.extensionMsg
		if msg == "" {
			msg = "non-standard JSON"
		}
		return nil, newSyntaxError(file, offset, msg)
	}

	file.Root = root
	srcast.Attach(root, file)

	return file, nil
}

// SyntaxError reports invalid JSON at a byte offset.
type SyntaxError struct {
	Path    string
	Offset  int
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func newSyntaxError(file *srcast.SourceFile, offset int, msg string) *SyntaxError {
	line, col := file.LineAt(offset)
	return &SyntaxError{
		Path:    file.Path,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: msg,
	}
}

// huPosition matches the "line N, column M: " prefix of hujson errors.
var huPosition = regexp.MustCompile(`^(?:hujson: )?line (\d+), column (\d+): `)

// fromHuJSON converts a hujson parse error into a *SyntaxError, recovering
// the byte offset from the reported line and column.
func fromHuJSON(file *srcast.SourceFile, err error) *SyntaxError {
	msg := err.Error()
	match := huPosition.FindStringSubmatch(msg)
	if match == nil {
		return newSyntaxError(file, 0, msg)
	}

	line, _ := strconv.Atoi(match[1])
	col, _ := strconv.Atoi(match[2])

	offset := len(file.Content)
	if line >= 1 && line <= len(file.Lines) {
		info := file.Lines[line-1]
		offset = min(info.StartOffset+max(col-1, 0), info.EndOffset)
	}
	return newSyntaxError(file, offset, msg[len(match[0]):])
}
