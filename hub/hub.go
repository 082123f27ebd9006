// Package hub provides a string-named registry of signals for loosely
// coupled publish/observe across components that do not share signal
// values directly. Emitters and listeners meet on a name; the payload is
// an arbitrary value the emitter documents.
//
// Listen and Remove are guarded by the hub's mutex. Delivery is not:
// Emit, and per-listener Enable/Disable, inherit the single-goroutine
// contract of the underlying signals, so all emissions for a given hub
// must happen on one goroutine. Listeners may freely mutate the hub from
// inside a delivery.
package hub

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/sigslot"
)

// Hub maps signal names to void signals carrying any payload.
type Hub struct {
	mu      sync.RWMutex
	signals map[string]*sigslot.VoidSignal[any]

	logger *zap.Logger
}

// New creates an empty hub.
func New(opts ...Option) *Hub {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Hub{
		signals: make(map[string]*sigslot.VoidSignal[any]),
		logger:  cfg.logger,
	}
}

// Listener is one named registration. Remove detaches it; Enable and
// Disable toggle it in place without losing its position.
type Listener struct {
	id   string
	name string
	hub  *Hub
	conn *sigslot.Connection
}

// ID returns the listener's unique identifier.
func (l *Listener) ID() string {
	return l.id
}

// Name returns the signal name the listener is attached to.
func (l *Listener) Name() string {
	return l.name
}

// Remove detaches the listener from the hub. The first call reports
// whether the listener was still attached; later calls return false. Once
// the last listener on a name is gone the name itself is released.
func (l *Listener) Remove() bool {
	h := l.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := l.conn.Disconnect()
	if removed {
		if sig := h.signals[l.name]; sig != nil && sig.IsEmpty() {
			delete(h.signals, l.name)
		}
	}
	return removed
}

// IsEnabled reports whether the listener currently receives emissions.
func (l *Listener) IsEnabled() bool {
	return l.conn.IsEnabled()
}

// Enable resumes delivery to the listener.
func (l *Listener) Enable() {
	l.conn.Enable()
}

// Disable pauses delivery without detaching the listener.
func (l *Listener) Disable() {
	l.conn.Disable()
}

// Listen attaches fn to the named signal. Listeners on the same name are
// invoked in the order they were attached.
func (h *Hub) Listen(name string, fn func(data any)) (*Listener, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if fn == nil {
		return nil, ErrNilListener
	}

	h.mu.Lock()
	sig, ok := h.signals[name]
	if !ok {
		sig = sigslot.NewVoid[any]()
		h.signals[name] = sig
	}
	conn := sig.Connect(fn)
	h.mu.Unlock()

	l := &Listener{
		id:   uuid.NewString(),
		name: name,
		hub:  h,
		conn: conn,
	}

	h.logger.Debug("listener attached",
		zap.String("signal", name),
		zap.String("listener", l.id),
	)

	return l, nil
}

// Emit invokes every listener attached to the named signal, in attach
// order. Emitting a name nobody listens to is a no-op.
func (h *Hub) Emit(name string, data any) {
	h.mu.RLock()
	sig := h.signals[name]
	h.mu.RUnlock()

	if sig == nil {
		return
	}

	h.logger.Debug("emitting signal", zap.String("signal", name))
	sig.Emit(data)
}

// Len returns the number of listeners attached to the named signal,
// counting disabled ones.
func (h *Hub) Len(name string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sig := h.signals[name]
	if sig == nil {
		return 0
	}
	return sig.Len()
}

// Names returns every signal name with at least one listener.
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.signals) == 0 {
		return nil
	}

	names := make([]string, 0, len(h.signals))
	for name := range h.signals {
		names = append(names, name)
	}
	return names
}
