package sigslot

import (
	"reflect"

	"github.com/dshills/sigslot/internal/ring"
)

// VoidSignal is a callback list for handlers that take T and return
// nothing. Handlers run purely for their side effects and the emission
// always visits every enabled handler; there is no result to aggregate, so
// no collector policy applies.
//
// VoidSignal has the same re-entrancy and single-goroutine contract as
// Signal.
type VoidSignal[T any] struct {
	ring ring.Ring[func(T)]
}

// NewVoid creates a signal for handlers with no return value.
func NewVoid[T any]() *VoidSignal[T] {
	return &VoidSignal[T]{}
}

// Connect appends fn to the callback list and returns a connection handle
// for it. A nil fn panics.
func (s *VoidSignal[T]) Connect(fn func(T)) *Connection {
	if fn == nil {
		panic("sigslot: nil handler")
	}
	return &Connection{link: s.ring.Append(fn)}
}

// Disconnect removes the connection's handler from this signal. It returns
// false if conn is nil or was already disconnected.
func (s *VoidSignal[T]) Disconnect(conn *Connection) bool {
	return conn.Disconnect()
}

// DisconnectFunc removes the first handler equal to fn by function code
// pointer. Best effort; see Signal.DisconnectFunc for the caveats.
func (s *VoidSignal[T]) DisconnectFunc(fn func(T)) bool {
	if fn == nil {
		return false
	}

	ptr := reflect.ValueOf(fn).Pointer()
	return s.ring.RemoveMatching(func(candidate func(T)) bool {
		return reflect.ValueOf(candidate).Pointer() == ptr
	})
}

// DisconnectAll removes every handler and releases the signal's internal
// registry. Outstanding connection handles become inert. Calling
// DisconnectAll from inside a handler of this signal is a programmer
// error and panics when the emission tries to advance.
func (s *VoidSignal[T]) DisconnectAll() {
	s.ring.Teardown()
}

// Emit invokes every enabled handler in registration order. The void
// collector always continues, so early stop never happens here.
func (s *VoidSignal[T]) Emit(v T) {
	s.ring.Each(func(fn func(T)) bool {
		fn(v)
		return true
	})
}

// Len returns the number of connected handlers, counting disabled ones.
func (s *VoidSignal[T]) Len() int {
	return s.ring.Len()
}

// IsEmpty reports whether the signal has no connected handlers.
func (s *VoidSignal[T]) IsEmpty() bool {
	return s.Len() == 0
}
