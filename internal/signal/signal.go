// Package signal implements the small observer/signal primitive used by
// every primitive entity (internal/geo) and the ordered object list
// (internal/objlist) to notify the scene graph of a change. Delivery is
// synchronous, on whichever goroutine triggered the mutation — this core
// is single-threaded and cooperatively interactive, so there is no
// dispatch queue here.
package signal

// Signal is a minimal typed publisher: zero or more subscribers are
// notified, in registration order, every time Emit is called. It is not
// safe for concurrent use — the owning primitive's Signal is only ever
// touched from the single editing goroutine.
type Signal[T any] struct {
	subscribers []*subscriber[T]
	nextID      int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscription identifies a registered subscriber so it can be detached.
type Subscription int

// Subscribe registers fn to be called on every future Emit. The returned
// Subscription can be passed to Unsubscribe to detach it.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	s.nextID++
	s.subscribers = append(s.subscribers, &subscriber[T]{id: s.nextID, fn: fn})
	return Subscription(s.nextID)
}

// Unsubscribe detaches a previously registered subscriber. Safe to call
// with an id that is already detached or was never registered.
func (s *Signal[T]) Unsubscribe(sub Subscription) {
	for i, entry := range s.subscribers {
		if entry.id == int(sub) {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// Emit calls every subscriber with event, in registration order.
// Re-entrant subscription changes made by a subscriber during Emit are
// deferred: Emit always iterates a snapshot taken at call time.
func (s *Signal[T]) Emit(event T) {
	snapshot := make([]*subscriber[T], len(s.subscribers))
	copy(snapshot, s.subscribers)
	for _, entry := range snapshot {
		entry.fn(event)
	}
}

// Len returns the number of currently registered subscribers.
func (s *Signal[T]) Len() int { return len(s.subscribers) }
