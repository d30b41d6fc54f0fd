package ui

const (
	marginX = 2
	// Rows above the tab body: blank, title, subtitle, blank, tab bar, blank.
	headerRows = 6
	// Rows below the tab body: status, help, blank.
	footerRows = 3
	// Rows of a list tab body above its panes: name, description, blank.
	paneOffset = 3
	paneGap    = 2

	minListWidth   = 24
	maxListWidth   = 38
	minDetailWidth = 10

	defaultWidth  = 80
	defaultHeight = 24
)

// dims is the geometry of a frame.
type dims struct {
	width  int
	height int
	// body is the number of rows available to the active tab.
	body int
	// panes is the number of rows of a list tab's list and detail panes.
	panes int
	// margin is the blank columns left of every line, dropped on terminals
	// too narrow to spare them.
	margin int
	// inner is the drawable width inside the horizontal margins.
	inner  int
	list   int
	detail int
}

func measure(width, height int) dims {
	d := dims{width: max(width, 0), height: max(height, 0)}
	d.body = max(d.height-headerRows-footerRows, 1)
	d.panes = max(d.body-paneOffset, 1)
	if d.width > 2*marginX {
		d.margin = marginX
	}
	d.inner = max(d.width-2*d.margin, 1)
	d.list = min(clamp(d.inner/3, minListWidth, maxListWidth), d.inner)
	d.detail = max(d.inner-d.list-paneGap, minDetailWidth)
	return d
}
