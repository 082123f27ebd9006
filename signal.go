package sigslot

import (
	"reflect"

	"github.com/dshills/sigslot/internal/ring"
)

// Handler is the callable signature for valued signals: one argument of
// type T, one result of type R.
type Handler[T, R any] func(T) R

// Signal is a callback list for handlers taking T and returning R, with an
// emission aggregate of type A determined by the signal's collector policy.
// Handlers are invoked in registration order.
//
// A Signal is safe for re-entrant use on a single goroutine: handlers may
// disconnect themselves or any other handler, connect new handlers, toggle
// enabled flags, or call Emit recursively. It is not safe for concurrent
// use from multiple goroutines without external synchronization.
//
// Obtain one through New, NewUntil0, NewWhile0, NewVector, or
// NewWithCollector, which pin A to the chosen policy.
type Signal[T, R, A any] struct {
	ring      ring.Ring[Handler[T, R]]
	collector func() Collector[R, A]
}

// New creates a signal whose Emit returns the result of the last handler
// invoked, or the zero value of R when no handler ran.
func New[T, R any]() *Signal[T, R, R] {
	return NewWithCollector[T](func() Collector[R, R] {
		return &lastCollector[R]{}
	})
}

// NewUntil0 creates a signal whose emission continues while handlers return
// a non-zero result and stops at the first zero value. Emit returns the
// last accepted result, including the stopping zero.
func NewUntil0[T any, R comparable]() *Signal[T, R, R] {
	return NewWithCollector[T](func() Collector[R, R] {
		return &until0Collector[R]{}
	})
}

// NewWhile0 creates a signal whose emission continues while handlers return
// the zero value and stops at the first non-zero result. Emit returns the
// last accepted result, including the stopping value.
func NewWhile0[T any, R comparable]() *Signal[T, R, R] {
	return NewWithCollector[T](func() Collector[R, R] {
		return &while0Collector[R]{}
	})
}

// NewVector creates a signal whose Emit returns every handler result in
// visitation order. The slice is empty when no handler ran.
func NewVector[T, R any]() *Signal[T, R, []R] {
	return NewWithCollector[T](func() Collector[R, []R] {
		return &vectorCollector[R]{}
	})
}

// NewWithCollector creates a signal with a custom collector policy. The
// factory is called once per Emit to produce a fresh collector.
func NewWithCollector[T, R, A any](factory func() Collector[R, A]) *Signal[T, R, A] {
	return &Signal[T, R, A]{collector: factory}
}

// Connect appends fn to the signal's callback list and returns a connection
// handle for it. Handlers run in the order they were connected. A nil fn is
// a programmer error and panics.
//
// To connect a method, pass a method value (recv.Handle); the receiver is
// captured by reference, so the caller must guarantee it outlives the
// connection.
func (s *Signal[T, R, A]) Connect(fn Handler[T, R]) *Connection {
	if fn == nil {
		panic("sigslot: nil handler")
	}
	return &Connection{link: s.ring.Append(fn)}
}

// Disconnect removes the connection's handler from this signal. It returns
// false if conn is nil or was already disconnected.
func (s *Signal[T, R, A]) Disconnect(conn *Connection) bool {
	return conn.Disconnect()
}

// DisconnectFunc removes the first handler equal to fn, comparing by
// function code pointer. This is a best-effort legacy path: distinct
// closures over the same function body, and method values of the same
// method on different receivers, compare equal. Prefer keeping the
// Connection from Connect and disconnecting through it.
func (s *Signal[T, R, A]) DisconnectFunc(fn Handler[T, R]) bool {
	if fn == nil {
		return false
	}

	ptr := reflect.ValueOf(fn).Pointer()
	return s.ring.RemoveMatching(func(candidate Handler[T, R]) bool {
		return reflect.ValueOf(candidate).Pointer() == ptr
	})
}

// DisconnectAll removes every handler and releases the signal's internal
// registry. Outstanding connection handles become inert: disconnecting
// them returns false. Calling DisconnectAll from inside a handler of this
// signal is a programmer error and panics when the emission tries to
// advance.
func (s *Signal[T, R, A]) DisconnectAll() {
	s.ring.Teardown()
}

// Emit invokes every enabled handler in registration order, feeding each
// result to a fresh collector, and returns the collector's aggregate. The
// collector decides per handler whether the emission continues; Until0 and
// While0 policies can end it early.
//
// With no handlers ever connected, Emit performs no traversal and returns
// the collector's neutral result.
//
// Emission is re-entrant: handlers may connect, disconnect, enable,
// disable, or call Emit on this or any other signal. Handlers connected
// during an emission are visited by that same emission, since they are
// appended at the tail ahead of the cursor.
func (s *Signal[T, R, A]) Emit(v T) A {
	collector := s.collector()

	s.ring.Each(func(fn Handler[T, R]) bool {
		return collector.Collect(fn(v))
	})

	return collector.Result()
}

// Len returns the number of connected handlers, counting disabled ones.
func (s *Signal[T, R, A]) Len() int {
	return s.ring.Len()
}

// IsEmpty reports whether the signal has no connected handlers.
func (s *Signal[T, R, A]) IsEmpty() bool {
	return s.Len() == 0
}
