package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// DefaultRepo is cloned when the content directory is absent.
	DefaultRepo = "https://github.com/ComputelessComputer/part-of-my-brain.git"
	// DefaultSiteURL prefixes derived post links.
	DefaultSiteURL = "https://johnjeong.com"

	contentDirName = "part-of-my-brain"
	searchDepth    = 6
)

// Options configures Load.
type Options struct {
	// Dir overrides the content directory. Empty means DefaultDir.
	Dir string
	// Repo is the remote origin used when the directory is absent.
	Repo string
	// SiteURL prefixes links derived from post slugs.
	SiteURL string
	// Fetcher populates a missing directory. Nil disables fetching.
	Fetcher Fetcher
	Logger  *slog.Logger
}

// DefaultDir returns the nearest part-of-my-brain directory above the
// working directory, or a location under the user's cache directory.
func DefaultDir() (string, error) {
	if dir, ok := findUp(contentDirName, isDir); ok {
		return dir, nil
	}

	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("retrieving user's cache directory: %w", err)
	}
	return filepath.Join(cache, "johnjeong", contentDirName), nil
}

// findUp looks for rel in the working directory and up to searchDepth-1 of
// its parents, returning the first path accepted by match.
func findUp(rel string, match func(path string) bool) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for i := 0; i < searchDepth; i++ {
		candidate := filepath.Join(dir, rel)
		if match(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// Load resolves the content directory, fetching it if absent, and parses it
// into a Bundle. Any error is a *LoadError.
func Load(ctx context.Context, opts Options) (*Bundle, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dir := opts.Dir
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, &LoadError{Kind: NotFound, Err: err}
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logger.Info("resolved content directory", "dir", dir)

	if !isDir(dir) {
		if err := fetch(ctx, opts, dir, logger); err != nil {
			return nil, err
		}
	}

	bundle, err := Parse(dir, opts.SiteURL)
	if err != nil {
		return nil, err
	}
	if has, err := NewFSLoader(dir).HasMarkdown(""); err == nil && !has {
		logger.Warn("no markdown files in content directory", "dir", dir)
	}
	logger.Info("loaded content", bundle.Summary()...)
	return bundle, nil
}

func fetch(ctx context.Context, opts Options, dir string, logger *slog.Logger) error {
	if opts.Fetcher == nil {
		return &LoadError{Kind: NotFound, Path: dir, Err: errors.New("fetching disabled")}
	}
	repo := opts.Repo
	if repo == "" {
		repo = DefaultRepo
	}
	tool := opts.Fetcher.Tool()

	logger.Info("content directory missing, fetching", "repo", repo, "dir", dir, "tool", tool)
	if err := opts.Fetcher.Fetch(ctx, repo, dir); err != nil {
		logger.Error("fetching content", "error", err)
		kind := FetchFailed
		if errors.Is(err, ErrToolMissing) {
			kind = NotFound
		}
		return &LoadError{Kind: kind, Path: dir, Tool: tool, Err: err}
	}
	if !isDir(dir) {
		return &LoadError{
			Kind: NotFound,
			Path: dir,
			Tool: tool,
			Err:  errors.New("directory still missing after fetch"),
		}
	}
	return nil
}

// Parse reads every tab's content from dir, which must exist.
func Parse(dir, siteURL string) (*Bundle, error) {
	if !isDir(dir) {
		return nil, &LoadError{Kind: NotFound, Path: dir, Err: errNotDir}
	}
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	p := &parser{loader: NewFSLoader(dir), siteURL: siteURL}

	items := make(map[Tab][]Item, NumTabs)
	for _, tab := range Tabs {
		var (
			list []Item
			err  error
		)
		switch tab {
		case Bio:
			list, err = p.prose("bio.md", "About")
		case Writing:
			list, err = p.posts("essays", true)
		case Projects:
			list, err = p.posts("projects", false)
		case Links:
			list, err = p.links("links.yaml")
		case Contact:
			list, err = p.prose("contact.md", "Contact")
		case Gallery:
			list, err = p.gallery("gallery")
		}
		if err != nil {
			return nil, err
		}
		items[tab] = list
	}
	return NewBundle(dir, items), nil
}

// Summary returns per-tab item counts suitable as slog attributes.
func (b *Bundle) Summary() []any {
	attrs := make([]any, 0, 2*NumTabs)
	for _, tab := range Tabs {
		attrs = append(attrs, tab.String(), b.Len(tab))
	}
	return attrs
}
