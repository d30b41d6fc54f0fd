package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"

	"github.com/ComputelessComputer/johnjeong/internal/content"
	"github.com/ComputelessComputer/johnjeong/internal/logging"
	"github.com/ComputelessComputer/johnjeong/internal/ui"
)

const (
	defaultTitle    = "John Jeong"
	defaultSubtitle = "Co-founder & Co-CEO at Hyprnote"
)

type config struct {
	ContentDir  string
	ContentRepo string
	SiteURL     string
	Title       string
	Subtitle    string
	Watch       bool
	Version     bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stdout, stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".johnjeong.yaml")

	fs := ff.NewFlagSet("johnjeong")
	fs.StringVar(&cfg.ContentDir, 'C', "content-dir", "", "Content directory. Defaults to the nearest part-of-my-brain directory.")
	fs.StringVar(&cfg.ContentRepo, 0, "content-repo", content.DefaultRepo, "Repository cloned when the content directory is missing.")
	fs.StringVar(&cfg.SiteURL, 0, "site-url", content.DefaultSiteURL, "Base URL of post links.")
	fs.StringVar(&cfg.Title, 0, "title", "", "Header title. Defaults to the site's Header.astro, then "+strconv.Quote(defaultTitle)+".")
	fs.StringVar(&cfg.Subtitle, 0, "subtitle", "", "Header subtitle. Defaults to the site's Header.astro, then "+strconv.Quote(defaultSubtitle)+".")
	fs.BoolVar(&cfg.Watch, 'w', "watch", "Reload content when files change.")
	fs.StringVar(&cfg.loggingOptions.File, 0, "log-file", "", "Write logs to this file.")
	fs.BoolVar(&cfg.Version, 'V', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("JOHNJEONG"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if errors.Is(err, ff.ErrHelp) {
		fmt.Fprintln(stdout, ffhelp.Flags(fs))
		fmt.Fprintln(stdout, "KEYS")
		fmt.Fprint(stdout, ui.KeyHelp())
		return config{}, err
	} else if err != nil {
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}

	cfg.applyHeaderDefaults()
	return cfg, nil
}

// applyHeaderDefaults fills a title or subtitle left unset by flags, env and
// config file from the site's header component, then from built-in values.
func (cfg *config) applyHeaderDefaults() {
	if cfg.Title != "" && cfg.Subtitle != "" {
		return
	}
	if h, ok := content.FindSiteHeader(); ok {
		if cfg.Title == "" {
			cfg.Title = h.Title
		}
		if cfg.Subtitle == "" {
			cfg.Subtitle = h.Subtitle
		}
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.Subtitle == "" {
		cfg.Subtitle = defaultSubtitle
	}
}
