package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("bfs: source vertex not found")

	// ErrUnreachable is returned by Path when the destination was never
	// discovered by the traversal that produced the map.
	ErrUnreachable = errors.New("bfs: vertex unreachable from source")
)

// Option configures BFS behavior via functional arguments.
type Option func(*options)

// options holds callbacks customizing BFS execution.
type options struct {
	// onVisit runs when a vertex is dequeued for expansion.
	// A non-nil return aborts the traversal.
	onVisit func(id, depth int) error
}

func defaultOptions() options {
	return options{
		onVisit: func(int, int) error { return nil },
	}
}

// WithOnVisit registers a callback invoked once per vertex, in visit
// order, with the vertex ID and its depth from the source. Returning an
// error from the callback stops the BFS and propagates that error.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}
