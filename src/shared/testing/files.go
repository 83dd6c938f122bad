package testing

import (
	"os"
	"path/filepath"
	"sort"

	. "github.com/onsi/gomega"
)

// Tree describes a two level category tree: category name to file names.
type Tree map[string][]string

// WriteFile writes contents to path, creating parent directories.
func WriteFile(path string, contents string) {
	ExpectWithOffset(1, os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	ExpectWithOffset(1, os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())
}

// MakeTree lays out tree under root. Every file's contents is
// "<category>/<name>" so moved files can be traced back.
func MakeTree(root string, tree Tree) {
	for category, names := range tree {
		categoryDir := filepath.Join(root, category)
		ExpectWithOffset(1, os.MkdirAll(categoryDir, 0o755)).To(Succeed())

		for _, name := range names {
			contents := category + "/" + name
			ExpectWithOffset(1, os.WriteFile(filepath.Join(categoryDir, name), []byte(contents), 0o644)).To(Succeed())
		}
	}
}

// FileNames lists the sorted names of regular files directly under dir.
// A missing dir yields no names.
func FileNames(dir string) []string {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}
	}
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	names := []string{}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names
}

func ReadFile(path string) string {
	contents, err := os.ReadFile(path)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(contents)
}
