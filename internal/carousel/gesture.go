package carousel

// DefaultSwipeThreshold is the horizontal distance a drag must exceed to count
// as a swipe. It is a tunable constant, not derived from the card size.
const DefaultSwipeThreshold = 40

// Swipe is the outcome of a finished gesture.
type Swipe int

const (
	SwipeNone    Swipe = iota
	SwipeAdvance       // dragged left, reveal later cards
	SwipeRetreat       // dragged right, reveal earlier cards
)

func (s Swipe) String() string {
	switch s {
	case SwipeAdvance:
		return "advance"
	case SwipeRetreat:
		return "retreat"
	default:
		return "none"
	}
}

// Stepper is the navigation surface a gesture drives.
type Stepper interface {
	Advance() bool
	Retreat() bool
}

// GestureRouter turns a press/move/release sequence into at most one
// navigation step.
type GestureRouter struct {
	threshold int
	active    bool
	startX    int
	deltaX    int
}

// NewGestureRouter creates a router with the given threshold.
// A non-positive threshold falls back to DefaultSwipeThreshold.
func NewGestureRouter(threshold int) GestureRouter {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return GestureRouter{threshold: threshold}
}

// Threshold returns the swipe threshold.
func (g GestureRouter) Threshold() int {
	return g.threshold
}

// Active reports whether a gesture is in progress.
func (g GestureRouter) Active() bool {
	return g.active
}

// Delta returns the latest horizontal delta of the gesture in progress.
func (g GestureRouter) Delta() int {
	return g.deltaX
}

// Start records the horizontal position where the gesture began.
func (g *GestureRouter) Start(x int) {
	g.active = true
	g.startX = x
	g.deltaX = 0
}

// Move tracks the latest delta. It never triggers navigation.
func (g *GestureRouter) Move(x int) {
	if !g.active {
		return
	}
	g.deltaX = x - g.startX
}

// End finishes the gesture and classifies it.
func (g *GestureRouter) End() Swipe {
	if !g.active {
		return SwipeNone
	}
	delta := g.deltaX
	g.Cancel()

	switch {
	case delta < -g.threshold:
		return SwipeAdvance
	case delta > g.threshold:
		return SwipeRetreat
	default:
		return SwipeNone
	}
}

// Route finishes the gesture and applies its outcome to s.
// Returns the swipe and whether s changed.
func (g *GestureRouter) Route(s Stepper) (Swipe, bool) {
	swipe := g.End()
	switch swipe {
	case SwipeAdvance:
		return swipe, s.Advance()
	case SwipeRetreat:
		return swipe, s.Retreat()
	case SwipeNone:
	}
	return swipe, false
}

// Cancel drops any gesture in progress.
func (g *GestureRouter) Cancel() {
	g.active = false
	g.startX = 0
	g.deltaX = 0
}
