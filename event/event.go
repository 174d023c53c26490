package event

// Event is a typed notification stream with explicit subscription handles
// Not safe for concurrent use: subscribe, fire and release on the loop goroutine
type Event[T any] struct {
	entries []entry[T]
	nextID  uint64
}

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Subscription is the handle returned by Subscribe
// Release must be called when the subscriber is torn down
type Subscription struct {
	id      uint64
	release func(uint64)
}

// Subscribe registers fn and returns its handle
func (e *Event[T]) Subscribe(fn func(T)) *Subscription {
	e.nextID++
	id := e.nextID
	e.entries = append(e.entries, entry[T]{id: id, fn: fn})
	return &Subscription{id: id, release: e.unsubscribe}
}

// Fire delivers v to every subscriber in subscription order
// Subscribers released during delivery are skipped
func (e *Event[T]) Fire(v T) {
	snapshot := make([]entry[T], len(e.entries))
	copy(snapshot, e.entries)
	for _, en := range snapshot {
		if e.has(en.id) {
			en.fn(v)
		}
	}
}

// Len returns the number of live subscriptions
func (e *Event[T]) Len() int {
	return len(e.entries)
}

func (e *Event[T]) has(id uint64) bool {
	for _, en := range e.entries {
		if en.id == id {
			return true
		}
	}
	return false
}

func (e *Event[T]) unsubscribe(id uint64) {
	for i, en := range e.entries {
		if en.id == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// Release detaches the subscriber, safe to call more than once and on nil
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	s.release(s.id)
	s.release = nil
}

// Active reports whether the subscription is still registered
func (s *Subscription) Active() bool {
	return s != nil && s.release != nil
}
