package vtree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/ngpatch/pkg/fix"
)

// Change is one staged file.
type Change struct {
	Path    string
	Created bool
	Content []byte
	Diff    *fix.Diff
}

type staged struct {
	original []byte
	content  []byte
	existed  bool
}

// Tree stages reads and writes over a Host. Reads see staged content, so a
// second update to the same file is planned against the first one's result.
// A Tree is not safe for concurrent use.
type Tree struct {
	host   Host
	dryRun bool
	files  map[string]*staged
	order  []string
}

// Option configures a Tree.
type Option func(*Tree)

// WithDryRun makes Commit report changes without writing them.
func WithDryRun(dryRun bool) Option {
	return func(t *Tree) { t.dryRun = dryRun }
}

// New returns an empty Tree over host.
func New(host Host, opts ...Option) *Tree {
	tree := &Tree{host: host, files: make(map[string]*staged)}
	for _, opt := range opts {
		opt(tree)
	}
	return tree
}

// DryRun reports whether Commit skips writing.
func (t *Tree) DryRun() bool { return t.dryRun }

func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, `\`, "/")), "/")
}

// Read returns the current content of p. A missing file is not an error:
// it yields nil content and a nil error.
func (t *Tree) Read(ctx context.Context, p string) ([]byte, error) {
	p = cleanPath(p)
	if entry, ok := t.files[p]; ok {
		return entry.content, nil
	}

	content, err := t.host.Read(ctx, p)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return content, nil
}

// Exists reports whether p exists, staged or in the host.
func (t *Tree) Exists(ctx context.Context, p string) (bool, error) {
	p = cleanPath(p)
	if _, ok := t.files[p]; ok {
		return true, nil
	}
	return t.host.Exists(ctx, p)
}

// Create stages a new file. It fails with ErrAlreadyExists if p exists.
func (t *Tree) Create(ctx context.Context, p string, content []byte) error {
	exists, err := t.Exists(ctx, p)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, p)
	}

	t.stage(cleanPath(p), nil, false, content)
	return nil
}

// Overwrite stages new content for an existing file.
func (t *Tree) Overwrite(ctx context.Context, p string, content []byte) error {
	p = cleanPath(p)
	if entry, ok := t.files[p]; ok {
		entry.content = bytes.Clone(content)
		return nil
	}

	original, err := t.Read(ctx, p)
	if err != nil {
		return err
	}
	if original == nil {
		if err := t.mustExist(ctx, p); err != nil {
			return err
		}
	}

	t.stage(p, original, true, content)
	return nil
}

func (t *Tree) mustExist(ctx context.Context, p string) error {
	exists, err := t.Exists(ctx, p)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return nil
}

func (t *Tree) stage(p string, original []byte, existed bool, content []byte) {
	if _, ok := t.files[p]; !ok {
		t.order = append(t.order, p)
	}
	t.files[p] = &staged{original: original, content: bytes.Clone(content), existed: existed}
}

// BeginUpdate opens a recorder over the current content of p.
func (t *Tree) BeginUpdate(ctx context.Context, p string) (*fix.Recorder, error) {
	p = cleanPath(p)

	content, err := t.Read(ctx, p)
	if err != nil {
		return nil, err
	}
	if content == nil {
		if err := t.mustExist(ctx, p); err != nil {
			return nil, err
		}
	}
	return fix.NewRecorder(p, content), nil
}

// CommitUpdate applies the recorder's edits and stages the result.
func (t *Tree) CommitUpdate(ctx context.Context, rec *fix.Recorder) error {
	if !rec.HasChanges() {
		return nil
	}

	result, err := rec.Result()
	if err != nil {
		return fmt.Errorf("update %s: %w", rec.Path(), err)
	}
	return t.Overwrite(ctx, rec.Path(), result)
}

// Changes lists staged files whose content differs from the host, in the
// order they were first staged.
func (t *Tree) Changes() []Change {
	var changes []Change
	for _, p := range t.order {
		entry := t.files[p]
		if entry.existed && bytes.Equal(entry.original, entry.content) {
			continue
		}
		changes = append(changes, Change{
			Path:    p,
			Created: !entry.existed,
			Content: entry.content,
			Diff:    fix.GenerateDiff(p, entry.original, entry.content),
		})
	}
	return changes
}

// Commit writes every change to the host, stopping at the first failure.
// In dry-run mode nothing is written. The committed (or previewed) changes
// are returned either way.
func (t *Tree) Commit(ctx context.Context) ([]Change, error) {
	changes := t.Changes()
	if t.dryRun {
		return changes, nil
	}

	for i, change := range changes {
		if err := t.host.Write(ctx, change.Path, change.Content); err != nil {
			return changes[:i], fmt.Errorf("commit %s: %w", change.Path, err)
		}
		entry := t.files[change.Path]
		entry.original, entry.existed = change.Content, true
	}
	return changes, nil
}
