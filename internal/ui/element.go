package ui

// drawable is implemented by every element a Stage can paint.
type drawable interface {
	Draw(c *Canvas, x, y int)
}

// transition tracks an in-flight visited/next change of a steppable element.
type transition struct {
	toVisited bool
	progress  float64
}

// steppable holds the visited state and transition shared by dots and separators.
type steppable struct {
	visited  bool
	active   *transition
	animator *Animator
}

// Visited reports the settled appearance. While animating it still
// reports the state the transition started from.
func (s *steppable) Visited() bool {
	return s.visited
}

// SetVisited switches appearance immediately.
func (s *steppable) SetVisited(visited bool) {
	s.visited = visited
	s.active = nil
}

// Animating reports whether a transition is in flight.
func (s *steppable) Animating() bool {
	return s.active != nil
}

// AnimateToVisited sweeps left to right into the visited appearance.
func (s *steppable) AnimateToVisited(done func()) {
	s.animate(true, done)
}

// AnimateToNext sweeps right to left back into the next appearance.
func (s *steppable) AnimateToNext(done func()) {
	s.animate(false, done)
}

func (s *steppable) animate(toVisited bool, done func()) {
	tr := &transition{toVisited: toVisited}
	s.active = tr
	s.animator.Start(
		func(p float64) { tr.progress = p },
		func() {
			if s.active == tr {
				s.visited = toVisited
				s.active = nil
			}
			done()
		},
	)
}

// visitedAt reports which appearance column col of width columns shows.
// Forward sweeps fill from the left, backward sweeps empty from the right.
func (s *steppable) visitedAt(col, width int) bool {
	if s.active == nil || width <= 0 {
		return s.visited
	}
	frac := (float64(col) + 0.5) / float64(width)
	if s.active.toVisited {
		return frac < s.active.progress
	}
	return frac < 1-s.active.progress
}
