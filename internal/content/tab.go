package content

// Tab is one of the fixed top-level views.
type Tab int

const (
	Bio Tab = iota
	Writing
	Projects
	Links
	Contact
	Gallery
)

// NumTabs is the number of tabs in the tab bar.
const NumTabs = 6

// Tabs lists every tab in display order.
var Tabs = [NumTabs]Tab{Bio, Writing, Projects, Links, Contact, Gallery}

// Kind distinguishes tabs navigated by a selection cursor from tabs navigated
// by a scroll offset.
type Kind int

const (
	KindList Kind = iota
	KindProse
)

func (t Tab) String() string {
	switch t {
	case Bio:
		return "Bio"
	case Writing:
		return "Writing"
	case Projects:
		return "Projects"
	case Links:
		return "Links"
	case Contact:
		return "Contact"
	case Gallery:
		return "Gallery"
	}
	return "Unknown"
}

// Kind reports how the tab is navigated.
func (t Tab) Kind() Kind {
	switch t {
	case Bio, Contact:
		return KindProse
	case Writing, Projects, Links, Gallery:
		return KindList
	}
	return KindList
}

// Description is the one-line blurb shown under the tab name.
func (t Tab) Description() string {
	switch t {
	case Bio:
		return "I like simple & intuitive stuff."
	case Writing:
		return "Long-form writing."
	case Projects:
		return "Things I've built."
	case Links:
		return "Where to find me."
	case Contact:
		return "How to reach me."
	case Gallery:
		return "Photos I took."
	}
	return ""
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	return t >= Bio && t <= Gallery
}

// TabAt returns the tab at the zero-based position in the tab bar.
func TabAt(i int) (Tab, bool) {
	if i < 0 || i >= NumTabs {
		return 0, false
	}
	return Tabs[i], true
}
