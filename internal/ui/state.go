package ui

import (
	"fmt"

	"github.com/ComputelessComputer/johnjeong/internal/content"
)

// Header is shown above the tab bar.
type Header struct {
	Title    string
	Subtitle string
}

// State is the application state: the active tab, each tab's position, the
// loaded content and whether the program is still running. Every operation is
// total; out-of-range movement is clamped.
type State struct {
	header    Header
	bundle    *content.Bundle
	active    content.Tab
	positions [content.NumTabs]Position
	running   bool
	status    string

	// viewport used to clamp positions
	width  int
	height int

	md *markdown
}

// NewState constructs the state for a loaded bundle with the first tab
// active.
func NewState(header Header, bundle *content.Bundle) *State {
	s := &State{
		header:  header,
		bundle:  bundle,
		active:  content.Bio,
		running: true,
		width:   defaultWidth,
		height:  defaultHeight,
		md:      newMarkdown(),
	}
	for _, tab := range content.Tabs {
		switch tab.Kind() {
		case content.KindList:
			s.positions[tab] = Selection{Index: NoSelection}
		case content.KindProse:
			s.positions[tab] = Scroll{}
		}
		s.clamp(tab)
	}
	return s
}

func (s *State) Active() content.Tab { return s.active }

func (s *State) Running() bool { return s.running }

func (s *State) Status() string { return s.status }

func (s *State) Bundle() *content.Bundle { return s.bundle }

// Position returns the position of the tab.
func (s *State) Position(t content.Tab) Position {
	if !t.Valid() {
		return nil
	}
	return s.positions[t]
}

// SwitchTab makes t the active tab. The tab's previous position is kept.
func (s *State) SwitchTab(t content.Tab) {
	if !t.Valid() {
		return
	}
	s.active = t
	s.status = ""
	s.clamp(t)
}

// MoveSelection moves the cursor of the active list tab by delta, stopping at
// either end. The detail pane returns to its top when the selection changes.
func (s *State) MoveSelection(delta int) {
	sel, ok := s.positions[s.active].(Selection)
	if !ok {
		return
	}
	n := s.bundle.Len(s.active)
	if n == 0 {
		return
	}
	next := clamp(sel.Index+delta, 0, n-1)
	if next == sel.Index {
		return
	}
	sel.Index = next
	sel.Detail = 0
	sel.Top = follow(sel.Top, next, s.dims().panes, n)
	s.positions[s.active] = sel
}

// Scroll moves the active tab's scrollable area by delta lines: the page of a
// prose tab, or the detail pane of a list tab.
func (s *State) Scroll(delta int) {
	switch p := s.positions[s.active].(type) {
	case Scroll:
		p.Offset = clamp(p.Offset+delta, 0, s.maxOffset(s.active))
		s.positions[s.active] = p
	case Selection:
		if p.Index == NoSelection {
			return
		}
		p.Detail = clamp(p.Detail+delta, 0, s.maxDetail(s.active, p.Index))
		s.positions[s.active] = p
	}
}

// ScrollToTop scrolls the active tab's scrollable area to its start.
func (s *State) ScrollToTop() {
	s.Scroll(-s.scrollExtent())
}

// ScrollToBottom scrolls the active tab's scrollable area to its end.
func (s *State) ScrollToBottom() {
	s.Scroll(s.scrollExtent())
}

// Page returns the number of lines a page scroll moves.
func (s *State) Page() int {
	d := s.dims()
	switch s.active.Kind() {
	case content.KindProse:
		return max(d.body, 1)
	case content.KindList:
		return max(d.panes, 1)
	}
	return 1
}

// Selected returns the item the open action applies to: the selected item of
// a list tab or the item at the top of a prose tab's window.
func (s *State) Selected() (content.Item, bool) {
	items := s.bundle.Items(s.active)
	idx := NoSelection
	switch p := s.positions[s.active].(type) {
	case Selection:
		idx = p.Index
	case Scroll:
		idx = s.proseDoc(s.active).itemAt(p.Offset)
	}
	if idx < 0 || idx >= len(items) {
		return content.Item{}, false
	}
	return items[idx], true
}

// OpenSelectedLink opens the selected item's link with opener. Nothing
// happens when the item has no link.
func (s *State) OpenSelectedLink(opener Opener) {
	item, ok := s.Selected()
	if !ok || !item.HasLink() || opener == nil {
		return
	}
	if err := opener.Open(item.Link); err != nil {
		s.status = fmt.Sprintf("Failed to open %s (%v)", item.Title, err)
		return
	}
	s.status = "Opened " + item.Title
}

// Quit stops the program.
func (s *State) Quit() {
	s.running = false
}

// Resize records the viewport and re-clamps every tab's position to it.
func (s *State) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = width
	s.height = height
	for _, tab := range content.Tabs {
		s.clamp(tab)
	}
}

// SetBundle replaces the loaded content, keeping positions where they remain
// valid.
func (s *State) SetBundle(bundle *content.Bundle) {
	s.bundle = bundle
	for _, tab := range content.Tabs {
		s.clamp(tab)
	}
}

// clamp restores the position invariants of tab for the current content and
// viewport.
func (s *State) clamp(tab content.Tab) {
	switch p := s.positions[tab].(type) {
	case Selection:
		s.positions[tab] = s.clampSelection(tab, p, s.dims())
	case Scroll:
		p.Offset = clamp(p.Offset, 0, s.maxOffset(tab))
		s.positions[tab] = p
	}
}

func (s *State) clampSelection(tab content.Tab, sel Selection, d dims) Selection {
	n := s.bundle.Len(tab)
	if n == 0 {
		return Selection{Index: NoSelection}
	}
	sel.Index = clamp(sel.Index, 0, n-1)
	sel.Top = follow(sel.Top, sel.Index, d.panes, n)
	sel.Detail = clamp(sel.Detail, 0, s.maxDetailFor(tab, sel.Index, d))
	return sel
}

func (s *State) scrollExtent() int {
	switch p := s.positions[s.active].(type) {
	case Scroll:
		return s.maxOffset(s.active) + 1
	case Selection:
		if p.Index == NoSelection {
			return 0
		}
		return s.maxDetail(s.active, p.Index) + 1
	}
	return 0
}

func (s *State) dims() dims {
	return measure(s.width, s.height)
}

func (s *State) proseDoc(tab content.Tab) document {
	return s.md.prose(s.bundle.Items(tab), s.dims().inner)
}

func (s *State) maxOffset(tab content.Tab) int {
	return maxOffsetFor(len(s.proseDoc(tab).lines), s.dims().body)
}

func (s *State) maxDetail(tab content.Tab, index int) int {
	return s.maxDetailFor(tab, index, s.dims())
}

func (s *State) maxDetailFor(tab content.Tab, index int, d dims) int {
	items := s.bundle.Items(tab)
	if index < 0 || index >= len(items) {
		return 0
	}
	return maxOffsetFor(len(s.md.detail(items[index], d.detail).lines), d.panes)
}

func maxOffsetFor(contentHeight, viewportHeight int) int {
	return max(0, contentHeight-viewportHeight)
}
