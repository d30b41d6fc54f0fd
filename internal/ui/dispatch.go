package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ComputelessComputer/johnjeong/internal/content"
)

type actionKind int

const (
	actionNone actionKind = iota
	actionSwitchTab
	actionMove
	actionScroll
	actionTop
	actionBottom
	actionOpen
	actionQuit
)

// action is the single state operation a key event maps to.
type action struct {
	kind  actionKind
	tab   content.Tab
	delta int
}

// dispatch maps a key event to at most one operation. Unbound keys map to
// actionNone.
func (k keyMap) dispatch(msg tea.KeyMsg, s *State) action {
	switch {
	case key.Matches(msg, k.Quit):
		return action{kind: actionQuit}
	case key.Matches(msg, k.Tabs):
		tab, ok := content.TabAt(int(msg.String()[0] - '1'))
		if !ok {
			return action{}
		}
		return action{kind: actionSwitchTab, tab: tab}
	case key.Matches(msg, k.Gallery):
		return action{kind: actionSwitchTab, tab: content.Gallery}
	case key.Matches(msg, k.Up):
		return lineAction(s.Active(), -1)
	case key.Matches(msg, k.Down):
		return lineAction(s.Active(), 1)
	case key.Matches(msg, k.PageUp):
		return action{kind: actionScroll, delta: -s.Page()}
	case key.Matches(msg, k.PageDown):
		return action{kind: actionScroll, delta: s.Page()}
	case key.Matches(msg, k.Top):
		return action{kind: actionTop}
	case key.Matches(msg, k.Bottom):
		return action{kind: actionBottom}
	case key.Matches(msg, k.Open):
		return action{kind: actionOpen}
	}
	return action{}
}

// lineAction moves the selection on list tabs and scrolls by a line on prose
// tabs.
func lineAction(tab content.Tab, delta int) action {
	switch tab.Kind() {
	case content.KindList:
		return action{kind: actionMove, delta: delta}
	case content.KindProse:
		return action{kind: actionScroll, delta: delta}
	}
	return action{}
}

func (s *State) apply(a action, opener Opener) {
	switch a.kind {
	case actionNone:
	case actionSwitchTab:
		s.SwitchTab(a.tab)
	case actionMove:
		s.MoveSelection(a.delta)
	case actionScroll:
		s.Scroll(a.delta)
	case actionTop:
		s.ScrollToTop()
	case actionBottom:
		s.ScrollToBottom()
	case actionOpen:
		s.OpenSelectedLink(opener)
	case actionQuit:
		s.Quit()
	}
}
