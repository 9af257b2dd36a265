package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFolderName is used by CreateFolder when no name is given.
const DefaultFolderName = "New Folder"

// ValidateName rejects names that would escape the current folder.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsRune(trimmed, filepath.Separator) || strings.ContainsRune(trimmed, '/'):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(trimmed, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	}
	return nil
}

// UniqueName returns name, or "name (n)" with the smallest n >= 1 that does not exist in dir.
func UniqueName(dir, name string) string {
	candidate := name
	for n := 1; exists(filepath.Join(dir, candidate)); n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	return candidate
}

// CreateFolder makes a new folder in dir and returns its path. A taken name gets a
// " (n)" suffix.
func CreateFolder(dir, name string) (string, error) {
	if name == "" {
		name = DefaultFolderName
	}
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(dir, UniqueName(dir, name))
	if err := os.Mkdir(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes path. A link is unlinked without touching its target, a folder is
// removed with its contents and a file is removed.
func Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", path, ErrNotFound)
		}
		return err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return os.Remove(path)
	case info.IsDir():
		return os.RemoveAll(path)
	default:
		return os.Remove(path)
	}
}

// Rename gives path a new name inside the same folder and returns the new path.
func Rename(path, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if err := ValidateName(newName); err != nil {
		return "", err
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("rename %s: %w", path, ErrNotFound)
		}
		return "", err
	}

	target := filepath.Join(filepath.Dir(path), newName)
	if target == path {
		return path, nil
	}
	if exists(target) {
		return "", fmt.Errorf("rename to %s: %w", newName, ErrExists)
	}
	if err := os.Rename(path, target); err != nil {
		return "", err
	}
	return target, nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
