package ui

// NoSelection is the selection index of a list tab without items.
const NoSelection = -1

// Position is the navigation state of one tab: a Selection for list tabs or a
// Scroll for prose tabs.
type Position interface {
	position()
}

// Selection is the cursor of a list tab.
type Selection struct {
	// Index of the highlighted item, or NoSelection.
	Index int
	// Top is the first list row in the visible window.
	Top int
	// Detail is the scroll offset of the selected item's detail pane.
	Detail int
}

// Scroll is the vertical position of a prose tab.
type Scroll struct {
	Offset int
}

func (Selection) position() {}
func (Scroll) position()    {}

// follow shifts the window top by the minimum amount needed to keep index
// within a window of rows rows over n items.
func follow(top, index, rows, n int) int {
	if n <= rows || rows <= 0 {
		return 0
	}
	if index < top {
		return max(index, 0)
	}
	if index >= top+rows {
		return index - rows + 1
	}
	return clamp(top, 0, n-rows)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
