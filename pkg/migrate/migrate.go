// Package migrate holds workspace migrations built from the planners.
package migrate

import (
	"context"
	"fmt"

	"github.com/yaklabco/ngpatch/pkg/jsonedit"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
	"github.com/yaklabco/ngpatch/pkg/vtree"
)

// DefaultBlacklistEntry is the import-blacklist entry removed by default.
const DefaultBlacklistEntry = "rxjs"

// LintConfigFiles are the tslint configurations a workspace usually has.
var LintConfigFiles = []string{"tslint.json", "src/tslint.json"}

// Result describes what StripImportBlacklist did with one file.
type Result struct {
	Path    string
	Removed int
	Skipped string
}

// Changed reports whether the file was modified.
func (r Result) Changed() bool { return r.Removed > 0 }

// StripImportBlacklist removes entry from rules["import-blacklist"] in the
// tslint configuration at path, staging the change in tree. Every
// occurrence is removed, re-parsing after each removal.
//
// A missing file, a missing rule or a rule that is not an array leaves the
// file alone; Result.Skipped says why. Invalid JSON is an error.
func StripImportBlacklist(ctx context.Context, tree *vtree.Tree, path, entry string) (Result, error) {
	result := Result{Path: path}

	content, err := tree.Read(ctx, path)
	if err != nil {
		return result, err
	}
	if content == nil {
		result.Skipped = "file not found"
		return result, nil
	}

	parser := jsonast.New(jsonast.WithExtensions())
	for {
		file, err := parser.Parse(ctx, path, content)
		if err != nil {
			return result, fmt.Errorf("parse %s: %w", path, err)
		}

		list := jsonedit.FindPath(file, "rules", "import-blacklist")
		switch {
		case list == nil:
			result.Skipped = "no import-blacklist rule"
			return result, nil
		case list.Kind != srcast.KindArray:
			result.Skipped = "import-blacklist is not an array"
			return result, nil
		}

		edits, err := jsonedit.RemoveArrayElement(list, jsonedit.StringEquals(entry))
		if err != nil {
			return result, err
		}
		if len(edits) == 0 {
			if result.Removed == 0 {
				result.Skipped = fmt.Sprintf("%q is not blacklisted", entry)
			}
			return result, nil
		}

		rec, err := tree.BeginUpdate(ctx, path)
		if err != nil {
			return result, err
		}
		if err := tree.CommitUpdate(ctx, rec.Apply(edits...)); err != nil {
			return result, err
		}
		result.Removed++

		if content, err = tree.Read(ctx, path); err != nil {
			return result, err
		}
	}
}

// StripImportBlacklistAll runs StripImportBlacklist over paths.
func StripImportBlacklistAll(ctx context.Context, tree *vtree.Tree, paths []string, entry string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		result, err := StripImportBlacklist(ctx, tree, path, entry)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
