// Package ring implements the intrusive callback ring backing a signal.
//
// The ring is a circular doubly-linked list of reference-counted nodes
// anchored by a permanent sentinel. Nodes are appended immediately before
// the sentinel, so walking the ring from the sentinel visits callbacks in
// registration order. Traversal is protected by per-node reference counts
// rather than locks: a cursor retains the node it is visiting, then retains
// the successor before releasing the current node. Unlinking a node clears
// its callback and splices its neighbors together but leaves the node's own
// next/prev links intact, so a cursor parked on a just-removed node can
// still resolve where to continue. This is what makes it safe for a
// callback to disconnect itself or any other callback, and for traversal to
// recurse, all on a single goroutine.
//
// The ring is not safe for concurrent use from multiple goroutines.
package ring

// Link is the minimal view of a node needed by connection handles:
// removal and the enabled flag. It deliberately exposes nothing else.
type Link interface {
	// Remove unlinks the node from its ring. It returns false if the node
	// is not reachable from its recorded successor, which covers both a
	// never-linked node and a node that was already removed.
	Remove() bool

	// Enabled reports whether the node's callback participates in traversal.
	Enabled() bool

	// SetEnabled toggles participation without unlinking the node.
	SetEnabled(enabled bool)
}

// Node is one entry in a ring: a callback, an enabled flag, the ring links,
// and a reference count guarding the node against release mid-visit.
type Node[F any] struct {
	next *Node[F]
	prev *Node[F]

	fn    F
	hasFn bool

	enabled bool

	// linked is true while the node is spliced into a live ring. It is
	// cleared on unlink (and on the sentinel at teardown) so removal of an
	// already-detached node can answer false without scanning: a detached
	// node's stale links lead into the released self-linked sentinel,
	// which a scan anchored outside the live ring would orbit forever.
	linked bool

	// refs counts the ring's own link plus any traversal cursors currently
	// parked on the node. The sentinel carries one extra permanent
	// reference so it can never be released by a cursor.
	refs int
}

// incref retains the node.
func (n *Node[F]) incref() {
	n.refs++
	if n.refs <= 0 {
		panic("ring: reference count corrupted")
	}
}

// decref releases one reference. Dropping to zero means nothing holds the
// node anymore; the garbage collector reclaims it once the last stale
// cursor link is gone. Going negative is a misuse of the protocol.
func (n *Node[F]) decref() {
	n.refs--
	if n.refs < 0 {
		panic("ring: node released more times than retained")
	}
}

// unlink clears the callback, splices the neighbors around the node, and
// releases the ring's reference. The node's own next/prev are left intact
// so a cursor currently on this node can continue from its old successor.
func (n *Node[F]) unlink() {
	var zero F
	n.fn = zero
	n.hasFn = false
	n.linked = false

	if n.next != nil {
		n.next.prev = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}

	n.decref()
}

// removeSibling scans forward from n's successor looking for target by
// identity, unlinking it on the first match. It returns false if target is
// no longer linked into this ring.
func (n *Node[F]) removeSibling(target *Node[F]) bool {
	start := n.next
	if start == nil {
		start = n
	}

	for link := start; link != n; link = link.next {
		if link == target {
			link.unlink()
			return true
		}
	}

	return false
}

// Remove implements Link.
func (n *Node[F]) Remove() bool {
	if n.next == nil || !n.linked {
		return false
	}
	return n.next.removeSibling(n)
}

// Enabled implements Link.
func (n *Node[F]) Enabled() bool {
	return n.enabled
}

// SetEnabled implements Link.
func (n *Node[F]) SetEnabled(enabled bool) {
	n.enabled = enabled
}

var _ Link = (*Node[func()])(nil)

// Ring anchors a callback ring. The zero value is ready to use; the
// sentinel is allocated on the first Append, keeping an unused ring at the
// cost of a single pointer.
type Ring[F any] struct {
	sentinel *Node[F]
}

// Init allocates the sentinel if it does not exist yet. Idempotent.
func (r *Ring[F]) Init() {
	if r.sentinel != nil {
		return
	}

	// One reference for being linked, one permanent anchor reference.
	s := &Node[F]{refs: 2, linked: true}
	s.next = s
	s.prev = s
	r.sentinel = s
}

// Initialized reports whether the sentinel has been allocated.
func (r *Ring[F]) Initialized() bool {
	return r.sentinel != nil
}

// Append inserts fn immediately before the sentinel, preserving
// registration order, and returns the new node. O(1).
func (r *Ring[F]) Append(fn F) *Node[F] {
	r.Init()

	s := r.sentinel
	n := &Node[F]{
		next:    s,
		prev:    s.prev,
		fn:      fn,
		hasFn:   true,
		enabled: true,
		linked:  true,
		refs:    1,
	}
	s.prev.next = n
	s.prev = n

	return n
}

// RemoveMatching scans forward from the sentinel's successor and unlinks
// the first node whose callback satisfies match. Linear cost. Returns false
// if no node matched or the ring was never initialized.
func (r *Ring[F]) RemoveMatching(match func(F) bool) bool {
	if r.sentinel == nil {
		return false
	}

	for link := r.sentinel.next; link != r.sentinel; link = link.next {
		if link.hasFn && match(link.fn) {
			link.unlink()
			return true
		}
	}

	return false
}

// Each walks the ring in registration order, calling visit for every
// enabled node that still holds a callback. Traversal stops early when
// visit returns false.
//
// The walk follows the retain/advance protocol: the current node is
// retained before visit runs, so the node survives even if visit unlinks
// it; afterwards the successor recorded on the node (stale or not) is
// retained before the current node is released. Callbacks connected while
// the walk is in progress land before the sentinel, ahead of the cursor,
// and are therefore visited by this same walk.
func (r *Ring[F]) Each(visit func(F) bool) {
	if r.sentinel == nil {
		return
	}

	link := r.sentinel
	link.incref()

	for {
		if link.enabled && link.hasFn {
			if !visit(link.fn) {
				break
			}
		}

		old := link
		link = old.next
		link.incref()
		old.decref()

		// Teardown mid-walk releases the sentinel the cursor needs to
		// terminate. That is a protocol violation; abort instead of
		// orbiting the detached ring forever. The released sentinel is
		// the only node that is both self-linked and unlinked, which also
		// catches a teardown followed by a re-initialization.
		if r.sentinel == nil || (link == link.next && !link.linked) {
			panic("ring: ring torn down during traversal")
		}
		if link == r.sentinel {
			break
		}
	}

	link.decref()
}

// Len counts the nodes currently linked and holding a callback, enabled or
// not. Linear cost.
func (r *Ring[F]) Len() int {
	if r.sentinel == nil {
		return 0
	}

	count := 0
	for link := r.sentinel.next; link != r.sentinel; link = link.next {
		if link.hasFn {
			count++
		}
	}
	return count
}

// Teardown unlinks every remaining node and releases the sentinel,
// returning the ring to its uninitialized state. Must not be called while
// a traversal of this ring is in progress; a traversal that finds its ring
// gone panics rather than spinning on the released sentinel.
func (r *Ring[F]) Teardown() {
	if r.sentinel == nil {
		return
	}

	for r.sentinel.next != r.sentinel {
		r.sentinel.next.unlink()
	}

	if r.sentinel.refs < 2 {
		panic("ring: sentinel reference count corrupted")
	}
	r.sentinel.linked = false
	r.sentinel.decref()
	r.sentinel.decref()
	r.sentinel = nil
}
