package ui

// Base holds the cell dimensions assigned to a component by its parent.
// Components embed it and call SetSize on tea.WindowSizeMsg.
type Base struct {
	width, height int
}

// SetSize records the dimensions the component may draw into.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

// Width returns the assigned width in columns.
func (b Base) Width() int { return b.width }

// Height returns the assigned height in rows.
func (b Base) Height() int { return b.height }
