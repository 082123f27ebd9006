// Package sigslot provides typed, in-process signals: callback lists where
// independent listeners connect handlers matching a declared signature and
// a single Emit call invokes every enabled handler in registration order,
// aggregating results through a pluggable collector policy.
//
// # Model
//
// A signal owns an intrusive ring of handler entries. Connect appends at
// the tail, so handlers always run first-connected-first-invoked. Each
// Connect returns a Connection handle used to disconnect the handler or to
// toggle it with Enable/Disable; a disabled handler keeps its position and
// can be re-enabled later.
//
//	counter := sigslot.NewVoid[int]()
//	conn := counter.Connect(func(n int) { fmt.Println("got", n) })
//	counter.Emit(42)
//	conn.Disconnect()
//
// Valued signals aggregate handler results through a collector chosen at
// construction:
//
//   - New: Emit returns the last handler's result
//   - NewUntil0: emission stops at the first zero result
//   - NewWhile0: emission stops at the first non-zero result
//   - NewVector: Emit returns every result, in order
//   - NewWithCollector: any custom Collector policy
//
//	validate := sigslot.NewUntil0[Request, bool]()
//	validate.Connect(checkAuth)
//	validate.Connect(checkQuota)
//	if !validate.Emit(req) { ... } // stops at the first failing check
//
// # Re-entrancy
//
// Emission is safe against mutation from inside handlers: a handler may
// disconnect itself or any other handler, connect new handlers, toggle
// enabled flags, or call Emit again on the same signal. The ring protects
// the node being visited with a reference count and keeps a removed node's
// old successor link intact, so the traversal always knows where to
// continue. Handlers connected during an emission are visited by that same
// emission.
//
// # Scopes
//
// ScopedConnection and ConnectionScope tie disconnection to scope exit:
//
//	var scope sigslot.ConnectionScope
//	defer scope.Close()
//	scope.Add(sig.Connect(onChange))
//	scope.Add(other.Connect(onClose))
//
// # Concurrency
//
// Signals are single-goroutine, cooperative, and synchronous. There is no
// internal locking; using one signal from multiple goroutines requires
// external synchronization. Within one goroutine, arbitrary re-entrancy is
// supported as described above.
//
// # Lifetime contract
//
// Connections are non-owning. Method values passed to Connect capture
// their receiver by reference; the caller must guarantee the receiver
// outlives the connection. Recoverable conditions (disconnecting twice,
// removing a handler that is gone) are reported by boolean returns, never
// by panics; corrupting the reference-count protocol or connecting a nil
// handler is a programmer error and panics.
//
// The hub subpackage layers a string-named registry of signals on top of
// this package for loosely coupled publish/observe across components.
package sigslot
