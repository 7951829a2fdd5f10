// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNotMarkdown = errors.New("file is not a markdown file")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExtension reports whether path carries one of the given extensions.
// Comparison is case-insensitive, matching how docs trees mix README.MD
// and readme.md.
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// ValidateMarkdown checks that path names an existing file with one of the
// given markdown extensions.
func ValidateMarkdown(path string, extensions []string) error {
	if !HasExtension(path, extensions) {
		return fmt.Errorf("%w: %s (want one of %s)", ErrNotMarkdown, path, strings.Join(extensions, ", "))
	}
	if !FileExists(path) {
		return fmt.Errorf("reading %s: %w", path, os.ErrNotExist)
	}
	return nil
}

// DiscoverMarkdown walks root and returns the relative paths of all files
// carrying one of the given extensions, in lexical walk order. Hidden
// directories (dot-prefixed) are skipped, as docs builds do.
func DiscoverMarkdown(root string, extensions []string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !HasExtension(name, extensions) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
