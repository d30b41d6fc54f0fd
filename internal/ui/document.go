package ui

import (
	"github.com/ComputelessComputer/johnjeong/internal/content"
)

// document is a block of rendered lines built from one or more items.
type document struct {
	lines []string
	// starts holds the first line of each item.
	starts []int
}

// itemAt returns the index of the item shown at line.
func (d document) itemAt(line int) int {
	idx := -1
	for i, start := range d.starts {
		if start > line {
			break
		}
		idx = i
	}
	return idx
}

func (md *markdown) prose(items []content.Item, width int) document {
	var doc document
	for i, item := range items {
		if i > 0 {
			doc.lines = append(doc.lines, "")
		}
		doc.starts = append(doc.starts, len(doc.lines))
		doc.lines = append(doc.lines, md.itemLines(item, width)...)
		if item.HasLink() {
			doc.lines = append(doc.lines, "", linkStyle.Render("↗ "+item.Link))
		}
	}
	return doc
}

func (md *markdown) detail(item content.Item, width int) document {
	return document{
		lines:  md.itemLines(item, width),
		starts: []int{0},
	}
}

func (md *markdown) itemLines(item content.Item, width int) []string {
	lines := []string{titleStyle.Render(item.Title)}
	if item.Date != "" {
		lines = append(lines, dimStyle.Render(item.Date))
	}
	if body := md.render(item.Body, width); len(body) > 0 {
		lines = append(lines, "")
		lines = append(lines, body...)
	}
	return lines
}

func formatDate(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}
