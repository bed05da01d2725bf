// Package catalog is a read-only accessor over the fixed three-level
// course file tree: section/semester/subject directories holding PDF files.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrRootNotFound is returned when the configured files root is absent.
var ErrRootNotFound = errors.New("files root not found")

// FileExtension is the only file type listed at the leaf level.
const FileExtension = ".pdf"

// Depth of the directory hierarchy above the files themselves.
const treeDepth = 3

// Catalog lists entries of the course file tree rooted at a fixed path.
type Catalog struct {
	root string
}

// New creates a catalog over the given root directory.
func New(root string) *Catalog {
	return &Catalog{root: root}
}

// ListChildren lists the entries under the given path segments, in directory
// order. Above the leaf level only subdirectories are returned; at the leaf
// level only files with the recognized extension are returned. A present but
// empty directory yields an empty slice and no error.
func (c *Catalog) ListChildren(segments ...string) ([]string, error) {
	if len(segments) > treeDepth {
		return nil, fmt.Errorf("path too deep: %d segments", len(segments))
	}

	if _, err := os.Stat(c.root); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, c.root)
		}
		return nil, err
	}

	dir := filepath.Join(append([]string{c.root}, segments...)...)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	leaf := len(segments) == treeDepth
	children := []string{}
	for _, entry := range entries {
		if leaf {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), FileExtension) {
				children = append(children, entry.Name())
			}
			continue
		}
		if entry.IsDir() {
			children = append(children, entry.Name())
		}
	}
	return children, nil
}

// FilePath resolves the absolute on-disk path of a leaf file from its
// three ancestors and name.
func (c *Catalog) FilePath(section, semester, subject, name string) string {
	return filepath.Join(c.root, section, semester, subject, name)
}
