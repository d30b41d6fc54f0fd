package content

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// meta is the front matter recognised on markdown files.
type meta struct {
	Title       string `yaml:"title"`
	CreatedAt   string `yaml:"created_at"`
	Published   string `yaml:"published"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// link is one entry of links.yaml.
type link struct {
	Label       string `yaml:"label"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

var defaultLinks = []link{
	{Label: "LinkedIn", URL: "https://www.linkedin.com/in/johntopia/"},
	{Label: "X (Twitter)", URL: "https://x.com/computeless"},
	{Label: "GitHub", URL: "https://github.com/ComputelessComputer"},
	{Label: "Email", URL: "mailto:john@hyprnote.com"},
}

type parser struct {
	loader  *FSLoader
	siteURL string
}

func (p *parser) parseFailed(rel string, err error) error {
	return &LoadError{
		Kind: ParseFailed,
		Path: p.loader.Root(),
		Item: rel,
		Err:  err,
	}
}

func (p *parser) markdown(rel string) (meta, string, error) {
	data, err := p.loader.ReadFile(rel)
	if err != nil {
		return meta{}, "", p.parseFailed(rel, err)
	}
	var m meta
	body, err := frontmatter.Parse(bytes.NewReader(data), &m)
	if err != nil {
		return meta{}, "", p.parseFailed(rel, err)
	}
	return m, strings.TrimSpace(string(body)), nil
}

// posts reads every markdown file under section. When publishedOnly is set,
// files whose published field is present and not "true" are skipped.
func (p *parser) posts(section string, publishedOnly bool) ([]Item, error) {
	files, err := p.loader.List(section, isMarkdown)
	if err != nil {
		return nil, p.parseFailed(section, err)
	}

	items := make([]Item, 0, len(files))
	for _, rel := range files {
		m, body, err := p.markdown(rel)
		if err != nil {
			return nil, err
		}
		if publishedOnly && m.Published != "" && !strings.EqualFold(m.Published, "true") {
			continue
		}

		slug := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
		date := m.CreatedAt
		if date == "" {
			date = dateFromSlug(slug)
		}
		title := m.Title
		if title == "" {
			title = titleFromSlug(slug)
		}
		if body == "" {
			body = m.Description
		}
		url := m.URL
		if url == "" {
			url = strings.TrimSuffix(p.siteURL, "/") + "/" + section + "/" + slug
		}
		sortKey := date
		if sortKey == "" {
			sortKey = slug
		}

		items = append(items, Item{
			Title:   title,
			Date:    date,
			Body:    body,
			Link:    url,
			sortKey: sortKey,
		})
	}
	sortNewestFirst(items)
	return items, nil
}

// prose reads a single page. A missing page yields no items.
func (p *parser) prose(rel string, fallbackTitle string) ([]Item, error) {
	if !p.loader.Exists(rel) {
		return nil, nil
	}
	m, body, err := p.markdown(rel)
	if err != nil {
		return nil, err
	}
	title := m.Title
	if title == "" {
		title = fallbackTitle
	}
	if body == "" {
		body = m.Description
	}
	return []Item{{
		Title: title,
		Date:  m.CreatedAt,
		Body:  body,
		Link:  m.URL,
	}}, nil
}

func (p *parser) links(rel string) ([]Item, error) {
	entries := defaultLinks
	if p.loader.Exists(rel) {
		data, err := p.loader.ReadFile(rel)
		if err != nil {
			return nil, p.parseFailed(rel, err)
		}
		entries = nil
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, p.parseFailed(rel, err)
		}
	}

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		if entry.Label == "" {
			return nil, p.parseFailed(rel, fmt.Errorf("entry %d: missing label", i+1))
		}
		body := entry.Description
		if body == "" {
			body = entry.URL
		}
		items = append(items, Item{
			Title: entry.Label,
			Body:  body,
			Link:  entry.URL,
		})
	}
	return items, nil
}

func (p *parser) gallery(section string) ([]Item, error) {
	files, err := p.loader.List(section, isImage)
	if err != nil {
		return nil, p.parseFailed(section, err)
	}

	items := make([]Item, 0, len(files))
	for _, rel := range files {
		abs := filepath.Join(p.loader.Root(), filepath.FromSlash(rel))
		stem := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
		sortKey := stem
		if info, err := p.loader.Stat(rel); err == nil {
			sortKey = fmt.Sprintf("%020d", info.ModTime().Unix())
		}
		items = append(items, Item{
			Title:   stem,
			Body:    "Image file: " + abs,
			Link:    abs,
			sortKey: sortKey,
		})
	}
	sortNewestFirst(items)
	return items, nil
}

func sortNewestFirst(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sortKey > items[j].sortKey
	})
}

func titleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

func dateFromSlug(slug string) string {
	if len(slug) < 10 {
		return ""
	}
	for _, r := range slug {
		if !unicode.IsDigit(r) && r != '-' && r != '_' {
			return ""
		}
	}
	return strings.ReplaceAll(slug, "_", "-")
}
