package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LintConfigName is the file DiscoverLintConfigs looks for.
const LintConfigName = "tslint.json"

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"tmp":          true,
	"out-tsc":      true,
}

// DiscoverLintConfigs walks the local directory root and returns every
// tslint.json below it as a slash-separated path relative to root, sorted.
// Hidden directories and build output are skipped; so are symlinked
// directories.
func DiscoverLintConfigs(ctx context.Context, root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != absRoot && (strings.HasPrefix(entry.Name(), ".") || skippedDirs[entry.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Name() != LintConfigName || !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
