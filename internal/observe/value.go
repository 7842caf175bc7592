// Package observe provides a typed value that notifies subscribers on change.
package observe

import "sync"

// Value holds the latest value of T and fans changes out to subscribers.
// Post is safe to call from any goroutine. Subscribers run on the posting
// goroutine, outside the lock, in subscription order.
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[int]func(T)
	order  []int
	nextID int
}

// NewValue creates a Value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Post stores value and notifies every subscriber
func (v *Value[T]) Post(value T) {
	v.mu.Lock()
	subs := v.storeLocked(value)
	v.mu.Unlock()

	notify(subs, value)
}

// Update applies fn to the current value and posts the result. The read
// and the store happen under one lock, so concurrent updates don't drop
// each other.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	next := fn(v.value)
	subs := v.storeLocked(next)
	v.mu.Unlock()

	notify(subs, next)
}

// storeLocked sets the value and returns the subscribers to notify.
// v.mu must be held.
func (v *Value[T]) storeLocked(value T) []func(T) {
	v.value = value
	subs := make([]func(T), 0, len(v.order))
	for _, id := range v.order {
		subs = append(subs, v.subs[id])
	}
	return subs
}

func notify[T any](subs []func(T), value T) {
	for _, fn := range subs {
		fn(value)
	}
}

// Subscribe registers fn for future changes. The returned function removes
// the subscription; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.order = append(v.order, id)
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			for i, sid := range v.order {
				if sid == id {
					v.order = append(v.order[:i], v.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Subscribers returns the number of active subscriptions
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}
