// Package scan lists the filenames the detector operates on. Traversal is
// deliberately shallow: the classification rules key off root-level marker
// files, so one directory read is enough and keeps large trees cheap.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ValidatePath cleans a project path and verifies it is an existing
// directory, returning the absolute form.
func ValidatePath(path string) (string, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access path '%s': %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// ListFiles returns the sorted names of regular files directly under root.
// Subdirectories are not descended into.
func ListFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory '%s': %w", root, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// ProjectName derives the display name for a project from its path.
func ProjectName(root string) string {
	return filepath.Base(root)
}
