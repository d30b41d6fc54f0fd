package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComputelessComputer/johnjeong/internal/content"
	"github.com/ComputelessComputer/johnjeong/internal/logging"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	for _, name := range []string{
		"JOHNJEONG_CONTENT_DIR",
		"JOHNJEONG_CONTENT_REPO",
		"JOHNJEONG_SITE_URL",
		"JOHNJEONG_TITLE",
		"JOHNJEONG_SUBTITLE",
		"JOHNJEONG_WATCH",
		"JOHNJEONG_LOG_LEVEL",
		"JOHNJEONG_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got config) {
				want := config{
					ContentRepo: content.DefaultRepo,
					SiteURL:     content.DefaultSiteURL,
					Title:       "John Jeong",
					Subtitle:    "Co-founder & Co-CEO at Hyprnote",
					loggingOptions: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"title: Jane\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "Jane", got.Title)
			},
		},
		{
			"env var sets content dir",
			"",
			nil,
			[]string{"JOHNJEONG_CONTENT_DIR=/srv/brain"},
			func(t *testing.T, got config) {
				assert.Equal(t, "/srv/brain", got.ContentDir)
			},
		},
		{
			"flag overrides env var",
			"",
			[]string{"--content-dir", "/flag"},
			[]string{"JOHNJEONG_CONTENT_DIR=/env"},
			func(t *testing.T, got config) {
				assert.Equal(t, "/flag", got.ContentDir)
			},
		},
		{
			"env var overrides config file",
			"subtitle: from file\n",
			nil,
			[]string{"JOHNJEONG_SUBTITLE=from env"},
			func(t *testing.T, got config) {
				assert.Equal(t, "from env", got.Subtitle)
			},
		},
		{
			"watch and logging",
			"",
			[]string{"-w", "--log-level", "debug", "--log-file", "/tmp/johnjeong.log"},
			nil,
			func(t *testing.T, got config) {
				assert.True(t, got.Watch)
				assert.Equal(t, "debug", got.loggingOptions.Level)
				assert.Equal(t, "/tmp/johnjeong.log", got.loggingOptions.File)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			path := filepath.Join(os.Getenv("HOME"), ".johnjeong.yaml")
			if tt.file != "" {
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
				t.Cleanup(func() { os.Remove(path) })
			}

			// and pass in flags
			got, err := parse(io.Discard, io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := parse(io.Discard, io.Discard, []string{"--log-level", "verbose"})
	assert.Error(t, err)
}

func TestConfig_SiteHeader(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOHNJEONG_TITLE", "")
	t.Setenv("JOHNJEONG_SUBTITLE", "")
	chdir(t, filepath.Join("testdata", "site"))

	got, err := parse(io.Discard, io.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, "From Astro", got.Title)
	assert.Equal(t, "Writer at Somewhere", got.Subtitle)

	got, err = parse(io.Discard, io.Discard, []string{"--title", "Flagged"})
	require.NoError(t, err)
	assert.Equal(t, "Flagged", got.Title)
	assert.Equal(t, "Writer at Somewhere", got.Subtitle)

	t.Setenv("JOHNJEONG_SUBTITLE", "From env")
	got, err = parse(io.Discard, io.Discard, nil)
	require.NoError(t, err)
	assert.Equal(t, "From Astro", got.Title)
	assert.Equal(t, "From env", got.Subtitle)
}
