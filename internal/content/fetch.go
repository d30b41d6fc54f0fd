package content

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Fetcher populates a missing content directory from a remote origin.
type Fetcher interface {
	// Fetch clones repo into dest. It returns an error wrapping
	// ErrToolMissing when the tool it needs is not installed.
	Fetch(ctx context.Context, repo, dest string) error
	// Tool names the external tool the fetcher invokes.
	Tool() string
}

// GitFetcher fetches content with a shallow `git clone`.
type GitFetcher struct {
	// Binary is the git executable. Defaults to "git" resolved on PATH.
	Binary string
}

func (g GitFetcher) Tool() string {
	if g.Binary == "" {
		return "git"
	}
	return g.Binary
}

func (g GitFetcher) Fetch(ctx context.Context, repo, dest string) error {
	bin, err := exec.LookPath(g.Tool())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrToolMissing, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "clone", "--depth", "1", repo, dest)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s clone %s: %w: %s", g.Tool(), repo, err, msg)
		}
		return fmt.Errorf("%s clone %s: %w", g.Tool(), repo, err)
	}
	return nil
}
