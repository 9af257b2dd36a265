// Package files provides the filesystem operations behind the patch browser: listing,
// searching, folder creation, deletion, renaming and bookmarks.
package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidName    = errors.New("invalid name")
	ErrExists         = errors.New("already exists")
	ErrBookmarkExists = errors.New("bookmark already exists")
)

// Entry is a file, folder or link inside a browsed directory.
type Entry struct {
	Path    string
	Name    string
	Size    int64
	IsDir   bool // true for folders and links to folders
	IsLink  bool
	ModTime time.Time
}

// IsPatch reports whether the entry is a file with the given extension, compared
// case-insensitively.
func (e Entry) IsPatch(ext string) bool {
	return !e.IsDir && strings.EqualFold(filepath.Ext(e.Name), ext)
}

// ListOptions configures List.
type ListOptions struct {
	// IncludeHidden includes names starting with a dot.
	IncludeHidden bool
}

// IsHiddenName reports whether name is a dot file. "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// List returns the entries of dir sorted by name. Links are followed to decide whether an
// entry is a folder; broken links are listed as files.
func List(dir string, opts ListOptions) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, err
	}

	result := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		if !opts.IncludeHidden && IsHiddenName(name) {
			continue
		}

		entry, ok := stat(filepath.Join(dir, name), d)
		if !ok {
			continue
		}
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func stat(path string, d fs.DirEntry) (Entry, bool) {
	info, err := d.Info()
	if err != nil {
		return Entry{}, false
	}

	entry := Entry{
		Path:    path,
		Name:    d.Name(),
		Size:    info.Size(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		entry.IsLink = true
		if target, err := os.Stat(path); err == nil {
			entry.IsDir = target.IsDir()
			entry.Size = target.Size()
		}
	}

	if entry.IsDir {
		entry.Size = 0
	}
	return entry, true
}

// Names returns the base names of entries in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// EnsureDirs creates every directory in paths, including parents.
func EnsureDirs(paths ...string) error {
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return err
		}
	}
	return nil
}
