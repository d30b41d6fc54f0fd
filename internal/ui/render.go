package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ComputelessComputer/johnjeong/internal/content"
)

const placeholder = "No content."

// Render draws the state into a frame of exactly height lines, none wider than
// width cells. Positions are clamped to the viewport locally and only the
// state's markdown cache is written, so equal states give equal frames.
func Render(s *State, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	d := measure(width, height)

	lines := make([]string, 0, d.height)
	lines = append(lines,
		"",
		titleStyle.Render(s.header.Title),
		dimStyle.Render(s.header.Subtitle),
		"",
		renderTabBar(s.active),
		"",
	)

	var body []string
	switch p := s.positions[s.active].(type) {
	case Scroll:
		body = renderProse(s, p, d)
	case Selection:
		body = renderList(s, p, d)
	}
	lines = append(lines, fit(body, d.body)...)

	lines = append(lines, statusStyle.Render(s.status), renderHelp(d), "")

	// Terminals shorter than the chrome still get exactly height lines.
	if len(lines) > d.height {
		lines = lines[:d.height]
	}
	for i, line := range lines {
		lines[i] = indent(ansi.Truncate(line, d.inner, "…"), d.margin)
	}
	return strings.Join(lines, "\n")
}

func renderTabBar(active content.Tab) string {
	labels := make([]string, 0, content.NumTabs)
	for i, tab := range content.Tabs {
		label := fmt.Sprintf("%d. %s", i+1, tab)
		if tab == active {
			labels = append(labels, activeTabStyle.Render("["+label+"]"))
		} else {
			labels = append(labels, inactiveTabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(labels, " ")
}

func renderProse(s *State, p Scroll, d dims) []string {
	items := s.bundle.Items(s.active)
	if len(items) == 0 {
		return []string{dimStyle.Render(placeholder)}
	}
	doc := s.md.prose(items, d.inner)
	offset := clamp(p.Offset, 0, maxOffsetFor(len(doc.lines), d.body))
	return window(doc.lines, offset, d.body)
}

func renderList(s *State, sel Selection, d dims) []string {
	tab := s.active
	lines := []string{
		titleStyle.Render(tab.String()),
		dimStyle.Render(tab.Description()),
		"",
	}

	items := s.bundle.Items(tab)
	if len(items) == 0 {
		return append(lines, dimStyle.Render(placeholder))
	}

	sel = s.clampSelection(tab, sel, d)
	list := make([]string, 0, d.panes)
	for i, item := range window(items, sel.Top, d.panes) {
		list = append(list, renderListRow(item, sel.Top+i == sel.Index, d.list))
	}

	doc := s.md.detail(items[sel.Index], d.detail)
	detail := window(doc.lines, sel.Detail, d.panes)

	for row := 0; row < d.panes; row++ {
		left := strings.Repeat(" ", d.list)
		if row < len(list) {
			left = list[row]
		}
		right := ""
		if row < len(detail) {
			right = ansi.Truncate(detail[row], d.detail, "…")
		}
		lines = append(lines, left+strings.Repeat(" ", paneGap)+right)
	}
	return lines
}

func renderListRow(item content.Item, selected bool, width int) string {
	marker := " "
	if selected {
		marker = "›"
	}
	label := item.Title
	if item.Date != "" {
		label = formatDate(item.Date) + " " + label
	}
	text := ansi.Truncate(marker+" "+label, width, "…")
	text += strings.Repeat(" ", max(width-lipgloss.Width(text), 0))
	if selected {
		return selectedStyle.Render(text)
	}
	return listLineStyle.Render(text)
}

func renderHelp(d dims) string {
	h := help.New()
	h.Width = d.inner
	return h.ShortHelpView(keys.ShortHelp())
}

// window returns at most rows elements of s starting at top.
func window[T any](s []T, top, rows int) []T {
	if top >= len(s) || rows <= 0 {
		return nil
	}
	top = max(top, 0)
	return s[top:min(top+rows, len(s))]
}

// fit pads or cuts lines to exactly rows lines.
func fit(lines []string, rows int) []string {
	if len(lines) > rows {
		return lines[:rows]
	}
	out := make([]string, rows)
	copy(out, lines)
	return out
}

func indent(line string, margin int) string {
	if line == "" {
		return ""
	}
	return strings.Repeat(" ", margin) + line
}
