package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// BookmarkFolders returns the names of the folders directly under root, sorted. The root
// itself is not included.
func BookmarkFolders(root string) ([]string, error) {
	entries, err := List(root, ListOptions{})
	if err != nil {
		return nil, err
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir && !e.IsLink {
			folders = append(folders, e.Name)
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// Bookmark places src inside root/folder, an empty folder meaning root itself. Files are
// copied; folders are linked. The folder is created when missing. An existing bookmark
// with the same name is left alone and ErrBookmarkExists is returned.
func Bookmark(src, root, folder string) (string, error) {
	if folder != "" {
		if err := ValidateName(folder); err != nil {
			return "", err
		}
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("bookmark %s: %w", src, ErrNotFound)
	}

	dir := filepath.Join(root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	target := filepath.Join(dir, filepath.Base(src))
	if exists(target) {
		return target, fmt.Errorf("%s: %w", target, ErrBookmarkExists)
	}

	if info.IsDir() {
		abs, err := filepath.Abs(src)
		if err != nil {
			return "", err
		}
		if err := os.Symlink(abs, target); err != nil {
			return "", err
		}
		return target, nil
	}

	if err := copyFile(src, target, info.Mode().Perm()); err != nil {
		return "", err
	}
	return target, nil
}

func copyFile(src, dst string, perm os.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
