// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByPrefix enumerates the entries directly under dir and returns the
// full paths of regular files whose base name starts with prefix and ends
// with ext. The result is sorted by file name so repeated calls over an
// unchanged directory yield the same order.
func FindFilesByPrefix(dir, prefix, ext string) ([]string, error) {
	if prefix == "" {
		panic("prefix must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ext) {
			files = append(files, filepath.Join(dir, name))
		}
	}

	sort.Strings(files)
	return files, nil
}
