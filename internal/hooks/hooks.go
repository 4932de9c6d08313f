// Package hooks provides ordered, synchronous subscriber lists for build lifecycle
// notifications.
//
// Subscribers run on the caller's goroutine in registration order. Delivery stops at the
// first subscriber that returns an error. Neither Hook nor Chain is safe for concurrent
// use; callers sharing one across goroutines must serialize access themselves.
package hooks

import "fmt"

// Handle identifies a subscription. The zero Handle is never issued.
type Handle uint64

// Handler observes (and may mutate) a value delivered by a Hook.
type Handler[T any] func(T) error

// Transformer receives the current value of a Chain and returns its replacement.
type Transformer[T any] func(T) (T, error)

// SubscriberError reports which subscriber interrupted delivery.
type SubscriberError struct {
	Position int // zero-based position among the subscribers at fire time
	Handle   Handle
	Err      error
}

func (e *SubscriberError) Error() string {
	return fmt.Sprintf("subscriber %d: %v", e.Position, e.Err)
}

func (e *SubscriberError) Unwrap() error { return e.Err }

type entry[F any] struct {
	handle Handle
	fn     F
}

type registry[F any] struct {
	next    Handle
	entries []entry[F]
}

func (r *registry[F]) add(fn F) Handle {
	r.next++
	r.entries = append(r.entries, entry[F]{handle: r.next, fn: fn})
	return r.next
}

func (r *registry[F]) remove(h Handle) bool {
	for i, e := range r.entries {
		if e.handle == h {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot lets subscribers unsubscribe (or subscribe) while a fire is in progress
// without disturbing the current delivery.
func (r *registry[F]) snapshot() []entry[F] {
	if len(r.entries) == 0 {
		return nil
	}
	return append([]entry[F](nil), r.entries...)
}

// Hook broadcasts a value to its subscribers. The zero value is ready to use.
type Hook[T any] struct {
	subs registry[Handler[T]]
}

// Subscribe appends fn to the subscriber list. A nil fn is ignored and yields the zero Handle.
func (h *Hook[T]) Subscribe(fn Handler[T]) Handle {
	if fn == nil {
		return 0
	}
	return h.subs.add(fn)
}

// Unsubscribe removes the subscription identified by handle, reporting whether it existed.
func (h *Hook[T]) Unsubscribe(handle Handle) bool {
	return h.subs.remove(handle)
}

// Len returns the number of current subscribers.
func (h *Hook[T]) Len() int {
	return len(h.subs.entries)
}

// Fire delivers v to every subscriber in registration order.
func (h *Hook[T]) Fire(v T) error {
	for i, e := range h.subs.snapshot() {
		if err := e.fn(v); err != nil {
			return &SubscriberError{Position: i, Handle: e.handle, Err: err}
		}
	}
	return nil
}

// Chain threads a value through its subscribers, each one receiving the previous one's
// result. The zero value is ready to use.
type Chain[T any] struct {
	subs registry[Transformer[T]]
}

// Subscribe appends fn to the chain. A nil fn is ignored and yields the zero Handle.
func (c *Chain[T]) Subscribe(fn Transformer[T]) Handle {
	if fn == nil {
		return 0
	}
	return c.subs.add(fn)
}

// Unsubscribe removes the subscription identified by handle, reporting whether it existed.
func (c *Chain[T]) Unsubscribe(handle Handle) bool {
	return c.subs.remove(handle)
}

// Len returns the number of current subscribers.
func (c *Chain[T]) Len() int {
	return len(c.subs.entries)
}

// Apply runs v through every subscriber and returns the final value. If a subscriber
// fails, Apply returns the original v together with the error.
func (c *Chain[T]) Apply(v T) (T, error) {
	cur := v
	for i, e := range c.subs.snapshot() {
		next, err := e.fn(cur)
		if err != nil {
			return v, &SubscriberError{Position: i, Handle: e.handle, Err: err}
		}
		cur = next
	}
	return cur, nil
}
