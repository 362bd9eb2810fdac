package breadcrumbs

// Signal is an ordered list of callbacks fired together by Emit.
// Callbacks that should run only once remove themselves when called,
// using the function returned by Subscribe.
type Signal struct {
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func() error
}

// Subscribe registers fn and returns a function that removes it.
// Removing twice is harmless.
func (s *Signal) Subscribe(fn func() error) (remove func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every callback registered at the time of the call, in
// registration order, and stops at the first error.
func (s *Signal) Emit() error {
	subs := s.subs
	for _, sub := range subs {
		if err := sub.fn(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered callbacks.
func (s *Signal) Len() int {
	return len(s.subs)
}
