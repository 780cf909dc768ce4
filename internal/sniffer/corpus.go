package sniffer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// listCorpus returns the .json files to sample, in directory-listing order,
// capped at maxFiles.
func listCorpus(dir string, maxFiles int) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Path: dir, Reason: "directory not found"}
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, &ConfigError{Path: dir, Reason: "not a directory"}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, &ConfigError{Path: dir, Reason: "no .json files found"}
	}
	if len(files) > maxFiles {
		files = files[:maxFiles]
	}
	return files, nil
}
