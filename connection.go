package sigslot

import "github.com/dshills/sigslot/internal/ring"

// Connection is a non-owning handle to one connected handler. It does not
// keep the handler registered: the signal owns the underlying entry, and a
// connection whose signal has been torn down simply becomes inert.
//
// Connections are not safe to copy; hold the pointer returned by Connect.
type Connection struct {
	link ring.Link
}

// Disconnect removes the handler from its signal. The first call reports
// whether the handler was actually found and removed; subsequent calls
// return false and have no effect. Safe to call during an emission,
// including from the handler itself.
func (c *Connection) Disconnect() bool {
	if c == nil || c.link == nil {
		return false
	}

	link := c.link
	c.link = nil
	return link.Remove()
}

// IsEnabled reports whether the handler participates in emissions. A
// disconnected connection reports false.
func (c *Connection) IsEnabled() bool {
	if c == nil || c.link == nil {
		return false
	}
	return c.link.Enabled()
}

// Enable re-enables the handler. Effective immediately, including for the
// remainder of an in-progress emission if the handler has not been visited
// yet. No-op on a disconnected connection.
func (c *Connection) Enable() {
	c.SetEnabled(true)
}

// Disable stops the handler from being invoked without removing it; the
// handler keeps its registration-order position for when it is re-enabled.
func (c *Connection) Disable() {
	c.SetEnabled(false)
}

// SetEnabled sets the handler's enabled flag directly.
func (c *Connection) SetEnabled(enabled bool) {
	if c == nil || c.link == nil {
		return
	}
	c.link.SetEnabled(enabled)
}

// ScopedConnection ties a connection's lifetime to a scope: Close
// disconnects the handler, and does so at most once. Typical use is
//
//	sc := sigslot.Scoped(sig.Connect(handler))
//	defer sc.Close()
//
// so the handler is released on every exit path.
type ScopedConnection struct {
	conn *Connection
}

// Scoped wraps conn so it can be released with Close.
func Scoped(conn *Connection) *ScopedConnection {
	return &ScopedConnection{conn: conn}
}

// Connection returns the wrapped connection for enable/disable calls.
func (s *ScopedConnection) Connection() *Connection {
	return s.conn
}

// Close disconnects the wrapped connection. Idempotent.
func (s *ScopedConnection) Close() {
	if s == nil {
		return
	}
	s.conn.Disconnect()
}

// ConnectionScope owns an ordered group of connections and disconnects all
// of them when the scope closes. The zero value is ready to use.
type ConnectionScope struct {
	conns []*Connection
}

// Add takes ownership of conn and returns it, so the caller can keep using
// the handle for enable/disable.
func (s *ConnectionScope) Add(conn *Connection) *Connection {
	s.conns = append(s.conns, conn)
	return conn
}

// Close disconnects every connection the scope owns, in the order they
// were added, and empties the scope. Idempotent.
func (s *ConnectionScope) Close() {
	for _, conn := range s.conns {
		conn.Disconnect()
	}
	s.conns = nil
}
