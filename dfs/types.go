package dfs

import (
	"errors"

	"github.com/velmaran/graphium/vmap"
)

// Visitation states for three-color DFS marking.
const (
	white = iota // not yet discovered
	gray         // discovered, descendants still being explored
	black        // fully explored
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Result holds the outcome of a full DFS traversal.
type Result struct {
	// Order lists every vertex in finish order: a vertex appears after
	// all vertices reachable from it through tree edges.
	Order []int

	// Forest maps each vertex to its discovery record: Dist is the
	// depth within its DFS tree, Pred the DFS parent
	// (vmap.NoPredecessor for tree roots).
	Forest *vmap.Map[int]
}

// Option configures DFS behavior via functional arguments.
type Option func(*options)

// options holds parameters and callbacks customizing DFS execution.
type options struct {
	onVisit   func(id int) error // pre-order, at discovery
	onExit    func(id int) error // post-order, at finish
	iterative bool
}

func defaultOptions() options {
	return options{
		onVisit: func(int) error { return nil },
		onExit:  func(int) error { return nil },
	}
}

// WithOnVisit registers a pre-order hook invoked when a vertex is
// discovered. Returning an error aborts the traversal.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit registers a post-order hook invoked when a vertex is
// finished, immediately before it is appended to Result.Order.
// Returning an error aborts the traversal.
func WithOnExit(fn func(id int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// WithIterative selects the explicit-stack traversal engine. Visit,
// exit, and finish orders are identical to the recursive default.
func WithIterative() Option {
	return func(o *options) { o.iterative = true }
}
