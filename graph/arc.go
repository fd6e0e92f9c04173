package graph

import "github.com/nav3d/astargraph/point3d"

// Arc is a directed edge between two nodes. Arcs are created with NewArc
// (or the Graph.AddArc* convenience constructors) and only become part of
// a Graph's bookkeeping once passed to Graph.AddArc.
type Arc[S any] struct {
	graph *Graph[S]

	start *Node[S]
	end   *Node[S]

	weight   float64
	passable bool

	lengthValid bool
	length      float64
}

// NewArc builds a directed arc from start to end with the default weight
// of 1.0. Both endpoints must be non-nil.
func NewArc[S any](start, end *Node[S]) (*Arc[S], error) {
	if start == nil || end == nil {
		return nil, ErrNilNode
	}
	return &Arc[S]{
		start:    start,
		end:      end,
		weight:   1.0,
		passable: true,
	}, nil
}

// StartNode returns the arc's origin node.
func (a *Arc[S]) StartNode() *Node[S] { return a.start }

// EndNode returns the arc's destination node.
func (a *Arc[S]) EndNode() *Node[S] { return a.end }

// Weight returns the arc's scalar multiplier.
func (a *Arc[S]) Weight() float64 { return a.weight }

// SetWeight changes the arc's weight and invalidates the cached length so
// that the next Cost()/Length() call recomputes it. Negative weights are
// rejected since cost must stay non-negative.
func (a *Arc[S]) SetWeight(w float64) error {
	if w < 0 {
		return ErrNegativeWeight
	}
	a.weight = w
	a.invalidateLength()
	return nil
}

// Passable reports whether the search should consider this arc.
func (a *Arc[S]) Passable() bool { return a.passable }

// SetPassable sets the local passability flag. It does not propagate to
// either endpoint node; only Node.SetPassable cascades, and only in the
// node-to-arc direction.
func (a *Arc[S]) SetPassable(v bool) { a.passable = v }

// Length returns the Euclidean distance between the arc's endpoints,
// computing and caching it on first use after construction or after the
// cache was invalidated by a position or weight change.
func (a *Arc[S]) Length() float64 {
	if !a.lengthValid {
		a.length = point3d.Distance(a.start.position, a.end.position)
		a.lengthValid = true
	}
	return a.length
}

// Cost returns weight * Length(), the scalar the search consumes.
func (a *Arc[S]) Cost() float64 {
	return a.weight * a.Length()
}

// invalidateLength marks the cached length stale. Called by the owning
// Node on position changes and by SetWeight (weight itself isn't part of
// the cached value, but invalidating here keeps callers from needing to
// reason about whether a cache miss already happened).
func (a *Arc[S]) invalidateLength() {
	a.lengthValid = false
}
