package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/ComputelessComputer/johnjeong/internal/content"
)

// recorder is an Opener that records every URL it is asked to open.
type recorder struct {
	urls []string
	err  error
}

func (r *recorder) Open(url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

func posts(n int) []content.Item {
	items := make([]content.Item, n)
	for i := range items {
		items[i] = content.Item{
			Title: fmt.Sprintf("Post %d", i),
			Date:  fmt.Sprintf("2024-01-%02d", n-i),
			Body:  fmt.Sprintf("Body of post %d.", i),
			Link:  fmt.Sprintf("https://johnjeong.com/essays/post-%d", i),
		}
	}
	return items
}

func longBody(paragraphs int) string {
	var b strings.Builder
	for i := 0; i < paragraphs; i++ {
		fmt.Fprintf(&b, "Paragraph number %d.\n\n", i)
	}
	return b.String()
}

func testBundle() *content.Bundle {
	return content.NewBundle("/content", map[content.Tab][]content.Item{
		content.Bio: {{
			Title: "About",
			Body:  longBody(60),
			Link:  "https://johnjeong.com",
		}},
		content.Writing:  posts(10),
		content.Projects: posts(3),
		content.Links: {
			{Title: "GitHub", Body: "Code.", Link: "https://github.com/ComputelessComputer"},
			{Title: "Nowhere", Body: "No link here."},
		},
		content.Gallery: {{
			Title: "sunset",
			Body:  "Image file: /content/gallery/sunset.png",
			Link:  "/content/gallery/sunset.png",
		}},
	})
}

func newTestState(t *testing.T) *State {
	t.Helper()

	s := NewState(Header{Title: "John Jeong", Subtitle: "Co-founder & Co-CEO at Hyprnote"}, testBundle())
	s.Resize(80, 24)
	return s
}

func plain(frame string) string {
	return ansi.Strip(frame)
}
