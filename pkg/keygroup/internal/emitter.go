package internal

import (
	"slices"

	"go.uber.org/atomic"
)

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID uint64

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Emitter fans a payload out to every listener registered for an event,
// in registration order. It is not safe for concurrent use; only the id
// counter is atomic so ids stay unique across emitters.
type Emitter[K comparable, T any] struct {
	listeners map[K][]listener[T]
}

var nextListenerID atomic.Uint64

func NewEmitter[K comparable, T any]() *Emitter[K, T] {
	return &Emitter[K, T]{listeners: make(map[K][]listener[T])}
}

// On registers fn for event and returns its id.
func (e *Emitter[K, T]) On(event K, fn func(T)) ListenerID {
	id := ListenerID(nextListenerID.Inc())
	e.listeners[event] = append(e.listeners[event], listener[T]{id: id, fn: fn})
	return id
}

// Off removes the listener with the given id. Returns false if it was not registered.
func (e *Emitter[K, T]) Off(event K, id ListenerID) bool {
	ls := e.listeners[event]
	i := slices.IndexFunc(ls, func(l listener[T]) bool { return l.id == id })
	if i < 0 {
		return false
	}
	e.listeners[event] = slices.Delete(ls, i, i+1)
	return true
}

// Emit calls every listener for event and returns how many were called.
// Listeners added or removed during Emit take effect on the next call.
func (e *Emitter[K, T]) Emit(event K, payload T) int {
	ls := slices.Clone(e.listeners[event])
	for _, l := range ls {
		l.fn(payload)
	}
	return len(ls)
}

// ListenerCount returns the number of listeners registered for event.
func (e *Emitter[K, T]) ListenerCount(event K) int {
	return len(e.listeners[event])
}
