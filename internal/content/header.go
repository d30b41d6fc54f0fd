package content

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// headerFile is the site component holding the header title and subtitle.
var headerFile = filepath.Join("src", "components", "Header.astro")

// SiteHeader is the title and subtitle declared by the site's header
// component. Either field may be empty.
type SiteHeader struct {
	Title    string
	Subtitle string
}

// FindSiteHeader reads the nearest src/components/Header.astro above the
// working directory. It reports false when no readable file is found.
func FindSiteHeader() (SiteHeader, bool) {
	path, ok := findUp(headerFile, isFile)
	if !ok {
		return SiteHeader{}, false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return SiteHeader{}, false
	}
	return parseSiteHeader(string(b)), true
}

func parseSiteHeader(src string) SiteHeader {
	var h SiteHeader
	if v, ok := quotedValue(src, "title ="); ok {
		h.Title = v
	}
	if v, ok := quotedValue(src, "subtitle ="); ok {
		h.Subtitle = stripTags(v)
	}
	return h
}

// quotedValue returns the first single or double quoted string following
// marker.
func quotedValue(src, marker string) (string, bool) {
	_, after, ok := strings.Cut(src, marker)
	if !ok {
		return "", false
	}
	start := strings.IndexAny(after, `"'`)
	if start < 0 {
		return "", false
	}
	quote := after[start]
	rest := after[start+1:]
	end := strings.IndexByte(rest, quote)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// stripTags returns the text content of an HTML fragment with whitespace
// collapsed.
func stripTags(fragment string) string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(root)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
