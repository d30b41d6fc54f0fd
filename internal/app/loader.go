package app

import (
	"context"
	"log/slog"

	"github.com/ComputelessComputer/johnjeong/internal/content"
	"github.com/ComputelessComputer/johnjeong/internal/ui"
)

// loadInitialState loads the content and prepares the UI state.
func loadInitialState(ctx context.Context, cfg config, logger *slog.Logger) (*ui.State, error) {
	bundle, err := content.Load(ctx, content.Options{
		Dir:     cfg.ContentDir,
		Repo:    cfg.ContentRepo,
		SiteURL: cfg.SiteURL,
		Fetcher: content.GitFetcher{},
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	header := ui.Header{Title: cfg.Title, Subtitle: cfg.Subtitle}
	return ui.NewState(header, bundle), nil
}

// newModel constructs the UI model. The returned function releases the
// content watcher, if any.
func newModel(ctx context.Context, cfg config, logger *slog.Logger, opener ui.Opener) (*ui.Model, func(), error) {
	state, err := loadInitialState(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	opts := ui.Options{
		State:  state,
		Opener: opener,
		Logger: logger,
	}
	cleanup := func() {}

	if cfg.Watch {
		dir := state.Bundle().Dir
		watcher, err := content.Watch(dir)
		if err != nil {
			logger.Warn("watching content directory", "dir", dir, "error", err)
		} else {
			opts.Watcher = watcher
			opts.Reload = func() (*content.Bundle, error) {
				return content.Parse(dir, cfg.SiteURL)
			}
			cleanup = func() {
				if err := watcher.Close(); err != nil {
					logger.Error("closing content watcher", "error", err)
				}
			}
		}
	}
	return ui.NewModel(opts), cleanup, nil
}
