// Package vtree stages file changes in memory over a storage host and
// commits them in one step, so a run either previews or writes all of its
// edits together.
package vtree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/viant/afs"
	afsfile "github.com/viant/afs/file"

	"github.com/yaklabco/ngpatch/pkg/fsutil"
)

var (
	// ErrNotFound is returned by hosts for missing files.
	ErrNotFound = errors.New("file not found")

	// ErrAlreadyExists is returned when creating a file that exists.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrModifiedExternally is returned when a file changed on disk between
	// being read and being committed.
	ErrModifiedExternally = errors.New("file was modified since it was read")
)

// Host is the storage a Tree reads from and commits to. Paths are relative
// to the host's root and use forward slashes.
type Host interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
	Write(ctx context.Context, path string, content []byte) error
}

const fileScheme = "file://"

// StorageHost serves files under a root that is either a local directory or
// any URL the afs storage manager understands (mem://, s3://, gs://, ...).
//
// Local files are fingerprinted when read and written atomically, with an
// optional sidecar backup; a commit fails with ErrModifiedExternally when
// the file changed on disk in between.
type StorageHost struct {
	root    string
	local   bool
	fs      afs.Service
	backups fsutil.BackupConfig

	mu   sync.Mutex
	seen map[string]*fsutil.FileInfo
}

// NewStorageHost returns a host rooted at root.
func NewStorageHost(root string, backups fsutil.BackupConfig) *StorageHost {
	local := !strings.Contains(root, "://") || strings.HasPrefix(root, fileScheme)
	if local {
		root = strings.TrimPrefix(root, fileScheme)
	}
	return &StorageHost{
		root:    root,
		local:   local,
		fs:      afs.New(),
		backups: backups,
		seen:    make(map[string]*fsutil.FileInfo),
	}
}

// Root returns the directory or URL the host serves.
func (h *StorageHost) Root() string { return h.root }

func (h *StorageHost) location(path string) string {
	if h.local {
		return filepath.Join(h.root, filepath.FromSlash(path))
	}
	return strings.TrimSuffix(h.root, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Read returns the content of path, or an error wrapping ErrNotFound.
func (h *StorageHost) Read(ctx context.Context, path string) ([]byte, error) {
	loc := h.location(path)

	if h.local {
		content, info, err := fsutil.ReadFile(ctx, loc)
		if errors.Is(err, fsutil.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if err != nil {
			return nil, err
		}

		h.mu.Lock()
		h.seen[loc] = info
		h.mu.Unlock()
		return content, nil
	}

	exists, err := h.fs.Exists(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", loc, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	reader, err := h.fs.OpenURL(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", loc, err)
	}
	defer func() { _ = reader.Close() }()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", loc, err)
	}
	return content, nil
}

// Exists reports whether path exists.
func (h *StorageHost) Exists(ctx context.Context, path string) (bool, error) {
	exists, err := h.fs.Exists(ctx, h.location(path))
	if err != nil {
		return false, fmt.Errorf("check %s: %w", path, err)
	}
	return exists, nil
}

// Write stores content at path, creating parent directories as needed.
func (h *StorageHost) Write(ctx context.Context, path string, content []byte) error {
	loc := h.location(path)
	if !h.local {
		if err := h.fs.Upload(ctx, loc, fsutil.DefaultFileMode, bytes.NewReader(content)); err != nil {
			return fmt.Errorf("upload %s: %w", loc, err)
		}
		return nil
	}

	h.mu.Lock()
	info := h.seen[loc]
	h.mu.Unlock()

	mode := fsutil.DefaultFileMode
	if info != nil {
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			return err
		}
		if modified {
			return fmt.Errorf("%w: %s", ErrModifiedExternally, path)
		}
		mode = info.Mode.Perm()
	}

	if _, err := fsutil.CreateBackup(ctx, loc, h.backups); err != nil {
		return err
	}

	dir := filepath.Dir(loc)
	if ok, _ := h.fs.Exists(ctx, dir); !ok {
		if err := h.fs.Create(ctx, dir, afsfile.DefaultDirOsMode, true); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, loc, content, mode); err != nil {
		return err
	}

	// The new content is what later writes compare against.
	if _, fresh, err := fsutil.ReadFile(ctx, loc); err == nil {
		h.mu.Lock()
		h.seen[loc] = fresh
		h.mu.Unlock()
	}
	return nil
}

// MemoryHost keeps files in a map. It is safe for concurrent use.
type MemoryHost struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryHost returns a host preloaded with files.
func NewMemoryHost(files map[string]string) *MemoryHost {
	host := &MemoryHost{files: make(map[string][]byte, len(files))}
	for path, content := range files {
		host.files[cleanPath(path)] = []byte(content)
	}
	return host
}

// Read returns a copy of the stored content.
func (h *MemoryHost) Read(_ context.Context, path string) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	content, ok := h.files[cleanPath(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return bytes.Clone(content), nil
}

// Exists reports whether path is stored.
func (h *MemoryHost) Exists(_ context.Context, path string) (bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.files[cleanPath(path)]
	return ok, nil
}

// Write stores a copy of content.
func (h *MemoryHost) Write(_ context.Context, path string, content []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.files[cleanPath(path)] = bytes.Clone(content)
	return nil
}

// Paths lists stored paths in sorted order.
func (h *MemoryHost) Paths() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Sorted(maps.Keys(h.files))
}
