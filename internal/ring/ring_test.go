package ring

import "testing"

// collect walks the ring and records every visited value.
func collect(r *Ring[func() int]) []int {
	var out []int
	r.Each(func(fn func() int) bool {
		out = append(out, fn())
		return true
	})
	return out
}

func value(n int) func() int {
	return func() int { return n }
}

func TestRing_ZeroValue(t *testing.T) {
	var r Ring[func() int]

	if r.Initialized() {
		t.Error("expected zero-value ring to be uninitialized")
	}
	if r.Len() != 0 {
		t.Errorf("expected Len() == 0, got %d", r.Len())
	}

	// Each on an uninitialized ring must not allocate the sentinel.
	r.Each(func(fn func() int) bool {
		t.Error("visit called on empty ring")
		return true
	})
	if r.Initialized() {
		t.Error("Each initialized the ring")
	}
}

func TestRing_InitIdempotent(t *testing.T) {
	var r Ring[func() int]

	r.Init()
	s := r.sentinel
	if s == nil {
		t.Fatal("Init() did not allocate the sentinel")
	}
	if s.refs != 2 {
		t.Errorf("expected sentinel refs == 2, got %d", s.refs)
	}
	if s.next != s || s.prev != s {
		t.Error("expected sentinel to close the ring onto itself")
	}

	r.Init()
	if r.sentinel != s {
		t.Error("second Init() replaced the sentinel")
	}
}

func TestRing_AppendOrder(t *testing.T) {
	var r Ring[func() int]

	r.Append(value(1))
	r.Append(value(2))
	r.Append(value(3))

	got := collect(&r)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRing_RingStaysClosed(t *testing.T) {
	var r Ring[func() int]

	nodes := []*Node[func() int]{
		r.Append(value(1)),
		r.Append(value(2)),
		r.Append(value(3)),
	}
	nodes[1].Remove()

	// Starting at the sentinel and following next must return to it.
	steps := 0
	for link := r.sentinel.next; link != r.sentinel; link = link.next {
		steps++
		if steps > 10 {
			t.Fatal("ring no longer closes")
		}
	}
	if steps != 2 {
		t.Errorf("expected 2 linked nodes after removal, got %d", steps)
	}
}

func TestNode_RemoveUnlinked(t *testing.T) {
	var r Ring[func() int]

	n := r.Append(value(1))
	if !n.Remove() {
		t.Fatal("first Remove() returned false")
	}
	if n.Remove() {
		t.Error("second Remove() returned true")
	}
	if n.hasFn {
		t.Error("expected callback cleared on unlink")
	}
}

func TestNode_RemoveNeverLinked(t *testing.T) {
	n := &Node[func() int]{}
	if n.Remove() {
		t.Error("Remove() on a never-linked node returned true")
	}
}

func TestNode_UnlinkKeepsStaleLinks(t *testing.T) {
	var r Ring[func() int]

	a := r.Append(value(1))
	b := r.Append(value(2))
	c := r.Append(value(3))

	next, prev := b.next, b.prev
	b.Remove()

	if b.next != next || b.prev != prev {
		t.Error("unlink cleared the node's own links")
	}
	if a.next != c || c.prev != a {
		t.Error("neighbors were not spliced around the removed node")
	}
}

func TestRing_RemoveMatching(t *testing.T) {
	var r Ring[func() int]

	r.Append(value(1))
	r.Append(value(2))
	r.Append(value(3))

	removed := r.RemoveMatching(func(fn func() int) bool { return fn() == 2 })
	if !removed {
		t.Fatal("RemoveMatching() did not find the node")
	}

	got := collect(&r)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected [1 3], got %v", got)
	}

	if r.RemoveMatching(func(fn func() int) bool { return fn() == 2 }) {
		t.Error("RemoveMatching() found an already-removed node")
	}
}

func TestRing_RemoveMatchingUninitialized(t *testing.T) {
	var r Ring[func() int]
	if r.RemoveMatching(func(func() int) bool { return true }) {
		t.Error("RemoveMatching() on uninitialized ring returned true")
	}
}

func TestRing_EachSkipsDisabled(t *testing.T) {
	var r Ring[func() int]

	r.Append(value(1))
	n := r.Append(value(2))
	r.Append(value(3))

	n.SetEnabled(false)
	got := collect(&r)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected [1 3], got %v", got)
	}

	n.SetEnabled(true)
	if got := collect(&r); len(got) != 3 {
		t.Errorf("expected 3 visits after re-enable, got %v", got)
	}
}

func TestRing_EachEarlyStop(t *testing.T) {
	var r Ring[func() int]

	r.Append(value(1))
	r.Append(value(2))
	r.Append(value(3))

	var visited []int
	r.Each(func(fn func() int) bool {
		visited = append(visited, fn())
		return len(visited) < 2
	})

	if len(visited) != 2 {
		t.Errorf("expected traversal to stop after 2 visits, got %v", visited)
	}

	// The ring must remain intact for later traversals.
	if got := collect(&r); len(got) != 3 {
		t.Errorf("expected 3 nodes after early stop, got %v", got)
	}
}

func TestRing_SelfRemovalDuringEach(t *testing.T) {
	var r Ring[func() int]

	var b *Node[func() int]
	var visited []int

	r.Append(func() int {
		visited = append(visited, 1)
		return 0
	})
	b = r.Append(func() int {
		visited = append(visited, 2)
		b.Remove() // handler removes itself mid-visit
		return 0
	})
	r.Append(func() int {
		visited = append(visited, 3)
		return 0
	})

	r.Each(func(fn func() int) bool { fn(); return true })
	if len(visited) != 3 {
		t.Fatalf("expected all 3 handlers visited, got %v", visited)
	}

	visited = nil
	r.Each(func(fn func() int) bool { fn(); return true })
	if len(visited) != 2 || visited[0] != 1 || visited[1] != 3 {
		t.Errorf("expected [1 3] on second pass, got %v", visited)
	}
}

func TestRing_PeerRemovalDuringEach(t *testing.T) {
	var r Ring[func() int]

	var b *Node[func() int]
	var visited []int

	r.Append(func() int {
		visited = append(visited, 1)
		b.Remove() // first handler removes a handler not yet visited
		return 0
	})
	b = r.Append(func() int {
		visited = append(visited, 2)
		return 0
	})
	r.Append(func() int {
		visited = append(visited, 3)
		return 0
	})

	r.Each(func(fn func() int) bool { fn(); return true })
	if len(visited) != 2 || visited[0] != 1 || visited[1] != 3 {
		t.Errorf("expected [1 3], got %v", visited)
	}
}

func TestRing_AppendDuringEach(t *testing.T) {
	var r Ring[func() int]

	var visited []int
	r.Append(func() int {
		visited = append(visited, 1)
		if len(visited) == 1 {
			r.Append(func() int {
				visited = append(visited, 99)
				return 0
			})
		}
		return 0
	})

	r.Each(func(fn func() int) bool { fn(); return true })

	// A node appended mid-walk lands before the sentinel, ahead of the
	// cursor, so the same walk visits it.
	if len(visited) != 2 || visited[1] != 99 {
		t.Errorf("expected appended node visited in same pass, got %v", visited)
	}
}

func TestRing_RefcountDuringVisit(t *testing.T) {
	var r Ring[func() int]

	var n *Node[func() int]
	n = r.Append(func() int {
		if n.refs != 2 {
			t.Errorf("expected refs == 2 while visited (ring + cursor), got %d", n.refs)
		}
		n.Remove()
		if n.refs != 1 {
			t.Errorf("expected refs == 1 after self-removal (cursor only), got %d", n.refs)
		}
		return 0
	})

	r.Each(func(fn func() int) bool { fn(); return true })
	if n.refs != 0 {
		t.Errorf("expected refs == 0 after traversal, got %d", n.refs)
	}
}

func TestRing_Len(t *testing.T) {
	var r Ring[func() int]

	if r.Len() != 0 {
		t.Fatalf("expected empty ring Len() == 0, got %d", r.Len())
	}

	a := r.Append(value(1))
	b := r.Append(value(2))
	if r.Len() != 2 {
		t.Errorf("expected Len() == 2, got %d", r.Len())
	}

	b.SetEnabled(false)
	if r.Len() != 2 {
		t.Errorf("expected disabled node still counted, got %d", r.Len())
	}

	a.Remove()
	if r.Len() != 1 {
		t.Errorf("expected Len() == 1 after removal, got %d", r.Len())
	}
}

func TestRing_Teardown(t *testing.T) {
	var r Ring[func() int]

	r.Append(value(1))
	r.Append(value(2))

	r.Teardown()
	if r.Initialized() {
		t.Error("expected ring uninitialized after Teardown()")
	}
	if r.Len() != 0 {
		t.Errorf("expected Len() == 0 after Teardown(), got %d", r.Len())
	}

	// Teardown on an empty ring is a no-op.
	r.Teardown()

	// The ring is reusable afterwards.
	r.Append(value(3))
	if got := collect(&r); len(got) != 1 || got[0] != 3 {
		t.Errorf("expected [3] after reuse, got %v", got)
	}
}

func TestNode_RemoveAfterTeardown(t *testing.T) {
	var r Ring[func() int]

	// Two nodes, so the first node's stale links lead through the second
	// detached node into the released self-linked sentinel. Removal must
	// answer false from the linked flag, not from a scan of that chain.
	a := r.Append(value(1))
	b := r.Append(value(2))
	r.Teardown()

	if a.Remove() {
		t.Error("Remove() after teardown returned true")
	}
	if b.Remove() {
		t.Error("Remove() of last node after teardown returned true")
	}
}

func TestRing_TeardownDuringEachPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when ring is torn down mid-traversal")
		}
	}()

	var r Ring[func() int]
	r.Append(value(1))

	r.Each(func(fn func() int) bool {
		r.Teardown()
		return true
	})
}

func TestRing_TeardownAndReuseDuringEachPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when ring is torn down and rebuilt mid-traversal")
		}
	}()

	var r Ring[func() int]
	r.Append(value(1))

	// Rebuilding the ring mid-walk leaves the cursor on the old detached
	// sentinel; the traversal must abort rather than orbit it.
	r.Each(func(fn func() int) bool {
		r.Teardown()
		r.Append(value(2))
		return true
	})
}

func TestNode_DecrefUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on reference count underflow")
		}
	}()

	n := &Node[func() int]{}
	n.decref()
}
