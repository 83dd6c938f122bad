// Package categorydir reads the two level dataset layout: a tree root holding
// one directory per category, each holding that category's audio files.
package categorydir

import (
	"os"
	"sort"
	"strings"

	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
)

const DefaultExtension = ".wav"

// Categories lists the names of the directories directly under root, sorted.
func Categories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, cerr.Field("root", root).Wrap(err).Error("Failed to read directory tree")
	}

	categories := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			categories = append(categories, entry.Name())
		}
	}

	sort.Strings(categories)
	return categories, nil
}

// AudioFiles lists the names of regular files directly under dir whose
// extension matches one of exts, ignoring case. Names come back sorted.
// With no exts only DefaultExtension matches.
func AudioFiles(dir string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = []string{DefaultExtension}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, cerr.Field("dir", dir).Wrap(err).Error("Failed to read category directory")
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if hasExtension(entry.Name(), exts) {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// ParseExtensions turns a comma separated flag value into extensions with a
// leading dot.
func ParseExtensions(value string) []string {
	exts := []string{}
	for _, ext := range strings.Split(value, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}

	return exts
}

func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}

	return false
}
