// Package binding provides the explicit two-way binding that connects a
// picker to the value it edits. A Value owns its data; readers call Get,
// writers call Set, and subscribers are invoked synchronously, in
// subscription order, before Set returns.
package binding

// Listener receives the new value after a Set.
type Listener[T any] func(T)

// Value is a bound value with ordered, synchronous change notification.
// It is not safe for concurrent use: a Value belongs to one UI goroutine.
type Value[T any] struct {
	value     T
	listeners []*subscription[T]
}

type subscription[T any] struct {
	fn     Listener[T]
	active bool
}

// New returns a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set stores value and notifies every subscriber in order.
func (v *Value[T]) Set(value T) {
	v.value = value
	// Snapshot so a listener subscribing during delivery waits for the next Set.
	subs := append([]*subscription[T](nil), v.listeners...)
	for _, s := range subs {
		if s.active {
			s.fn(value)
		}
	}
}

// Subscribe registers fn and returns a function that removes it.
func (v *Value[T]) Subscribe(fn Listener[T]) (cancel func()) {
	s := &subscription[T]{fn: fn, active: true}
	v.listeners = append(v.listeners, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, l := range v.listeners {
			if l == s {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				break
			}
		}
	}
}

// Listeners returns the number of active subscribers.
func (v *Value[T]) Listeners() int {
	return len(v.listeners)
}
