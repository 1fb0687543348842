package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"admintools/internal/domain"
	"admintools/internal/ports/output"
)

var _ output.PageSource = (*Finder)(nil)

// Finder walks a directory tree for files whose base name matches a glob.
type Finder struct {
	root    string
	pattern glob.Glob
}

// NewFinder compiles pattern (e.g. "page.tsx" or "page.{tsx,jsx}").
func NewFinder(root, pattern string) (*Finder, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("compile page pattern %q: %w", pattern, err)
	}
	return &Finder{root: root, pattern: g}, nil
}

// Discover lists matching files under the root, sorted by relative path.
func (f *Finder) Discover() ([]output.PageFile, error) {
	if _, err := os.Stat(f.root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var files []output.PageFile
	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == "node_modules" || name == ".git" || name == ".next" {
				return filepath.SkipDir
			}
			return nil
		}
		if !f.pattern.Match(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(f.root, path)
		if err != nil {
			return err
		}
		files = append(files, output.PageFile{Path: path, RelPath: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", f.root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Read returns the file contents as text.
func (f *Finder) Read(file output.PageFile) (string, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrPageUnreadable, file.RelPath, err)
	}
	return string(data), nil
}
