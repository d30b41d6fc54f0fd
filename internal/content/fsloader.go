package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var errNotDir = errors.New("path is not a directory")

// FSLoader lists content files under a root directory.
type FSLoader struct {
	root  string
	cache map[string][]string
}

// NewFSLoader creates a loader that reads from the provided root directory.
func NewFSLoader(root string) *FSLoader {
	return &FSLoader{
		root:  root,
		cache: make(map[string][]string),
	}
}

// Root returns the directory the loader reads from.
func (l *FSLoader) Root() string {
	return l.root
}

// List returns the files beneath relPath accepted by match, as slash
// separated paths relative to the loader root. A missing directory yields no
// files and no error.
func (l *FSLoader) List(relPath string, match func(name string) bool) ([]string, error) {
	dir := l.abs(relPath)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errNotDir
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && shouldSkipDir(name) {
				return fs.SkipDir
			}
			return nil
		}
		if !match(name) {
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// HasMarkdown reports whether the path (relative to the loader root) contains
// at least one Markdown file within its subtree.
func (l *FSLoader) HasMarkdown(relPath string) (bool, error) {
	files, ok := l.cache[relPath]
	if !ok {
		var err error
		files, err = l.List(relPath, isMarkdown)
		if err != nil {
			return false, err
		}
		l.cache[relPath] = files
	}
	return len(files) > 0, nil
}

// Exists reports whether relPath names a regular file.
func (l *FSLoader) Exists(relPath string) bool {
	info, err := os.Stat(l.abs(relPath))
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the contents of relPath.
func (l *FSLoader) ReadFile(relPath string) ([]byte, error) {
	return os.ReadFile(l.abs(relPath))
}

// Stat returns file info for relPath.
func (l *FSLoader) Stat(relPath string) (fs.FileInfo, error) {
	return os.Stat(l.abs(relPath))
}

func (l *FSLoader) abs(relPath string) string {
	if relPath == "" {
		return l.root
	}
	return filepath.Join(l.root, filepath.FromSlash(relPath))
}

func shouldSkipDir(name string) bool {
	switch strings.ToLower(name) {
	case ".git", "node_modules", ".hg", ".svn", ".idea", ".vscode":
		return true
	default:
		return false
	}
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".mdx")
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
