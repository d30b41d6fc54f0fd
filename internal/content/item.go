package content

// Item is one displayable unit of content.
type Item struct {
	Title string
	// Date is the item's date as written in the source, possibly empty.
	Date string
	Body string
	// Link is opened by the open action. Empty when the item has none.
	Link string

	sortKey string
}

// HasLink reports whether the item can be opened.
func (i Item) HasLink() bool {
	return i.Link != ""
}

// Bundle is the full set of loaded content, grouped by tab. A Bundle is not
// modified after Load returns it.
type Bundle struct {
	// Dir is the content directory the bundle was read from.
	Dir string

	tabs [NumTabs][]Item
}

// NewBundle constructs a bundle from items grouped by tab. Tabs absent from
// the map are empty.
func NewBundle(dir string, items map[Tab][]Item) *Bundle {
	b := &Bundle{Dir: dir}
	for tab, list := range items {
		if tab.Valid() {
			b.tabs[tab] = list
		}
	}
	return b
}

// Items returns the items belonging to the tab.
func (b *Bundle) Items(t Tab) []Item {
	if b == nil || !t.Valid() {
		return nil
	}
	return b.tabs[t]
}

// Len returns the number of items in the tab.
func (b *Bundle) Len(t Tab) int {
	return len(b.Items(t))
}
