package carousel

// Navigator owns the carousel index. The item count and page size are stored
// so every read sees an index that is valid for the current regime; both
// setters re-clamp immediately.
type Navigator struct {
	index         int // leftmost visible card
	itemCount     int
	slidesPerView int
}

// NewNavigator creates a Navigator at index 0.
func NewNavigator(itemCount, slidesPerView int) Navigator {
	n := Navigator{}
	n.itemCount = max(itemCount, 0)
	n.slidesPerView = max(slidesPerView, 1)
	return n
}

// Index returns the current index.
func (n Navigator) Index() int {
	return n.index
}

// ItemCount returns the number of items being navigated.
func (n Navigator) ItemCount() int {
	return n.itemCount
}

// SlidesPerView returns the current page size.
func (n Navigator) SlidesPerView() int {
	return n.slidesPerView
}

// MaxIndex returns the deepest valid index for the current regime.
func (n Navigator) MaxIndex() int {
	return MaxIndex(n.itemCount, n.slidesPerView)
}

// Enabled reports whether there is more than one page to navigate.
func (n Navigator) Enabled() bool {
	return n.itemCount > n.slidesPerView
}

// Advance moves one card forward, wrapping from the last page to the first.
// Returns true if the index changed. No-op when navigation is disabled.
func (n *Navigator) Advance() bool {
	if !n.Enabled() {
		return false
	}
	if n.index >= n.MaxIndex() {
		n.index = 0
	} else {
		n.index++
	}
	return true
}

// Retreat moves one card back, wrapping from the first page to the last.
// Returns true if the index changed. No-op when navigation is disabled.
func (n *Navigator) Retreat() bool {
	if !n.Enabled() {
		return false
	}
	if n.index <= 0 {
		n.index = n.MaxIndex()
	} else {
		n.index--
	}
	return true
}

// SetSlidesPerView updates the page size and clamps the index to the new bound.
// Returns true if the page size changed.
func (n *Navigator) SetSlidesPerView(slidesPerView int) bool {
	slidesPerView = max(slidesPerView, 1)
	changed := slidesPerView != n.slidesPerView
	n.slidesPerView = slidesPerView
	n.clamp()
	return changed
}

// SetItemCount updates the item count and clamps the index to the new bound.
// Returns true if the index had to move.
func (n *Navigator) SetItemCount(itemCount int) bool {
	n.itemCount = max(itemCount, 0)
	return n.clamp()
}

// Offset returns the horizontal translation of the track for the given step.
func (n Navigator) Offset(stepPx int) int {
	return -(n.index * stepPx)
}

// Reset returns to the first card.
func (n *Navigator) Reset() {
	n.index = 0
}

func (n *Navigator) clamp() bool {
	old := n.index
	n.index = clamp(n.index, n.MaxIndex())
	return n.index != old
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
