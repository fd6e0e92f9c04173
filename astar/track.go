package astar

import "github.com/nav3d/astargraph/graph"

// Track is a path prefix from the start node to EndNode, recorded as a
// back-linked chain through Parent. Evaluation is deliberately not a
// Track method: target, balance, and the heuristic are scoped to the
// AStar engine that created the Track, never to process-global state, so
// computing it lives on the engine (see AStar.evaluation).
type Track[S any] struct {
	EndNode       *graph.Node[S]
	Parent        *Track[S]
	Cost          float64
	NbArcsVisited int
}

// startTrack builds the zero-cost track representing the search's origin.
func startTrack[S any](start *graph.Node[S]) *Track[S] {
	return &Track[S]{EndNode: start}
}

// extend builds the successor track reached by following arc from t.
func (t *Track[S]) extend(arc *graph.Arc[S]) *Track[S] {
	return &Track[S]{
		EndNode:       arc.EndNode(),
		Parent:        t,
		Cost:          t.Cost + arc.Cost(),
		NbArcsVisited: t.NbArcsVisited + 1,
	}
}

// sameEndNode reports whether t and other terminate at the same node, by
// identity — the relation the engine uses to deduplicate frontier
// entries.
func (t *Track[S]) sameEndNode(other *Track[S]) bool {
	return graph.SameIdentity(t.EndNode, other.EndNode)
}
