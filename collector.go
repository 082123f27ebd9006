package sigslot

// Collector aggregates per-handler results during an emission and decides
// after each handler whether the emission continues. A fresh collector is
// created for every Emit call; R is the handler result type and A is the
// aggregate type Emit returns.
type Collector[R, A any] interface {
	// Collect accepts one handler result and reports whether the emission
	// should keep visiting handlers.
	Collect(r R) bool

	// Result returns the aggregate after the emission ends. With zero
	// handlers visited it returns the collector's neutral value.
	Result() A
}

// lastCollector keeps the most recent result and never stops the emission.
// This is the default policy for valued signals.
type lastCollector[R any] struct {
	last R
}

func (c *lastCollector[R]) Collect(r R) bool {
	c.last = r
	return true
}

func (c *lastCollector[R]) Result() R {
	return c.last
}

// until0Collector keeps emissions going while handlers return a non-zero
// result, stopping at the first zero value.
type until0Collector[R comparable] struct {
	result R
}

func (c *until0Collector[R]) Collect(r R) bool {
	c.result = r
	var zero R
	return r != zero
}

func (c *until0Collector[R]) Result() R {
	return c.result
}

// while0Collector keeps emissions going while handlers return the zero
// value, stopping at the first non-zero result.
type while0Collector[R comparable] struct {
	result R
}

func (c *while0Collector[R]) Collect(r R) bool {
	c.result = r
	var zero R
	return r == zero
}

func (c *while0Collector[R]) Result() R {
	return c.result
}

// vectorCollector accumulates every result in visitation order and never
// stops the emission.
type vectorCollector[R any] struct {
	results []R
}

func (c *vectorCollector[R]) Collect(r R) bool {
	c.results = append(c.results, r)
	return true
}

func (c *vectorCollector[R]) Result() []R {
	return c.results
}
