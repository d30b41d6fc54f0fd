package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"
)

type markdownKey struct {
	body  string
	width int
}

// markdown renders item bodies into terminal lines. Results are memoised per
// body and width; output depends only on those two inputs.
type markdown struct {
	renderers map[int]*glamour.TermRenderer
	lines     map[markdownKey][]string
}

func newMarkdown() *markdown {
	return &markdown{
		renderers: make(map[int]*glamour.TermRenderer),
		lines:     make(map[markdownKey][]string),
	}
}

func (md *markdown) render(body string, width int) []string {
	if body == "" {
		return nil
	}
	key := markdownKey{body: body, width: width}
	if lines, ok := md.lines[key]; ok {
		return lines
	}

	var out string
	r, err := md.renderer(width)
	if err == nil {
		out, err = r.Render(body)
	}
	if err != nil {
		out = wordwrap.String(body, width)
	}
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	md.lines[key] = lines
	return lines
}

func (md *markdown) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := md.renderers[width]; ok {
		return r, nil
	}
	r, err := newRenderer(width)
	if err != nil {
		return nil, err
	}
	md.renderers[width] = r
	return r, nil
}

func newRenderer(width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(styles.TokyoNightStyle)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
}
