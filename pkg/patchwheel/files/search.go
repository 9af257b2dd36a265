package files

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// WalkOptions configures Walk.
type WalkOptions struct {
	IncludeHidden bool

	// SkipHiddenDirs stops the walk from descending into hidden folders.
	// Only meaningful when IncludeHidden is false.
	SkipHiddenDirs bool
}

// WalkFunc is called for every entry visited by Walk. Returning filepath.SkipDir on a folder
// skips its contents; any other error stops the walk.
type WalkFunc func(entry Entry) error

// Walk visits root depth-first, folders before their contents. Unreadable entries below
// root are skipped; a missing or unreadable root is an error. Links to folders are reported
// but not descended into.
func Walk(ctx context.Context, root string, opts WalkOptions, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path != root && !opts.IncludeHidden && IsHiddenName(d.Name()) {
			if d.IsDir() && opts.SkipHiddenDirs {
				return filepath.SkipDir
			}
			return nil
		}

		entry, ok := stat(path, d)
		if !ok {
			return nil
		}
		return fn(entry)
	})
}

// Search walks root and returns every file whose name contains query, ignoring case.
// Results are in walk order. An empty query matches nothing.
func Search(ctx context.Context, root, query string, opts WalkOptions) ([]Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	folder := cases.Fold()
	needle := folder.String(query)

	var matches []Entry
	err := Walk(ctx, root, opts, func(entry Entry) error {
		if entry.IsDir {
			return nil
		}
		if strings.Contains(folder.String(entry.Name), needle) {
			matches = append(matches, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
