// Package pubsub provides typed observer lists that components embed to
// publish named events without sharing a base emitter.
package pubsub

// Topic is a list of subscribers for one event type. The zero value is
// ready to use.
type Topic[T any] struct {
	subs []*subscriber[T]
}

type subscriber[T any] struct {
	fn        func(T)
	cancelled bool
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (t *Topic[T]) Subscribe(fn func(T)) (cancel func()) {
	s := &subscriber[T]{fn: fn}
	t.subs = append(t.subs, s)
	return func() {
		if s.cancelled {
			return
		}
		s.cancelled = true
		for i, cur := range t.subs {
			if cur == s {
				t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers v to every subscriber in subscription order. Handlers
// may subscribe or cancel while the event is being delivered; a handler
// cancelled mid-delivery is not called.
func (t *Topic[T]) Publish(v T) {
	snapshot := make([]*subscriber[T], len(t.subs))
	copy(snapshot, t.subs)
	for _, s := range snapshot {
		if s.cancelled {
			continue
		}
		s.fn(v)
	}
}

// Len returns the number of live subscribers.
func (t *Topic[T]) Len() int {
	return len(t.subs)
}
