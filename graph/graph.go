// Package graph implements a generic directed-graph data model embedded
// in 3D Euclidean space: nodes carry a position and an opaque payload,
// arcs carry weight and a lazily-cached length, and a Graph exclusively
// owns the nodes and arcs it is given.
package graph

import (
	"log/slog"
	"sync"

	"github.com/nav3d/astargraph/point3d"
)

// Graph owns a set of nodes and arcs and provides the spatial queries the
// astar package needs (closest node/arc, bounding box). A zero Graph is
// not usable; construct one with New.
type Graph[S any] struct {
	mu sync.RWMutex

	nodes     []*Node[S]
	nodeIndex map[*Node[S]]struct{}

	arcs     []*Arc[S]
	arcIndex map[*Arc[S]]struct{}

	logger *slog.Logger
}

// New builds an empty Graph. If logger is nil, slog.Default() is used.
func New[S any](logger *slog.Logger) *Graph[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Graph[S]{
		nodeIndex: make(map[*Node[S]]struct{}),
		arcIndex:  make(map[*Arc[S]]struct{}),
		logger:    logger,
	}
}

// Lock acquires the graph's exclusive lock. AStar.SearchPath holds this
// for the duration of a one-shot search; the stepwise NextStep API does
// not acquire it, so callers driving NextStep across goroutines must
// exclude mutators themselves.
func (g *Graph[S]) Lock() { g.mu.Lock() }

// Unlock releases the lock acquired by Lock.
func (g *Graph[S]) Unlock() { g.mu.Unlock() }

// RLock acquires a shared read lock, used by read-only spatial queries.
func (g *Graph[S]) RLock() { g.mu.RLock() }

// RUnlock releases the lock acquired by RLock.
func (g *Graph[S]) RUnlock() { g.mu.RUnlock() }

// Nodes returns the graph's nodes in insertion order. The returned slice
// is a copy.
func (g *Graph[S]) Nodes() []*Node[S] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node[S], len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Arcs returns the graph's arcs in insertion order. The returned slice is
// a copy.
func (g *Graph[S]) Arcs() []*Arc[S] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Arc[S], len(g.arcs))
	copy(out, g.arcs)
	return out
}

// AddNode inserts n if it is non-nil and not already present (compared by
// identity). Returns whether the insertion happened.
func (g *Graph[S]) AddNode(n *Node[S]) bool {
	if n == nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodeIndex[n]; ok {
		return false
	}

	g.nodes = append(g.nodes, n)
	g.nodeIndex[n] = struct{}{}
	n.graph = g
	g.logger.Debug("graph: node added", "position", n.position.String())
	return true
}

// AddArc inserts a if it is non-nil and not already present. Fails if
// either endpoint is not a member of this graph.
func (g *Graph[S]) AddArc(a *Arc[S]) (bool, error) {
	if a == nil {
		return false, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.arcIndex[a]; ok {
		return false, nil
	}
	if _, ok := g.nodeIndex[a.start]; !ok {
		return false, ErrArcEndpointNotMember
	}
	if _, ok := g.nodeIndex[a.end]; !ok {
		return false, ErrArcEndpointNotMember
	}

	g.arcs = append(g.arcs, a)
	g.arcIndex[a] = struct{}{}
	a.start.outgoing = append(a.start.outgoing, a)
	a.end.incoming = append(a.end.incoming, a)
	a.graph = g
	g.logger.Debug("graph: arc added", "weight", a.weight)
	return true, nil
}

// AddArcBetween is a convenience that builds a new arc from u to v with
// the given weight and inserts it.
func (g *Graph[S]) AddArcBetween(u, v *Node[S], weight float64) (*Arc[S], error) {
	a, err := NewArc(u, v)
	if err != nil {
		return nil, err
	}
	if err := a.SetWeight(weight); err != nil {
		return nil, err
	}
	if _, err := g.AddArc(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddBidirectional inserts two opposing arcs of the given weight between
// u and v.
func (g *Graph[S]) AddBidirectional(u, v *Node[S], weight float64) (forward, backward *Arc[S], err error) {
	forward, err = g.AddArcBetween(u, v, weight)
	if err != nil {
		return nil, nil, err
	}
	backward, err = g.AddArcBetween(v, u, weight)
	if err != nil {
		return nil, nil, err
	}
	return forward, backward, nil
}

// RemoveNode removes n from the node list and removes every incident arc
// from both the graph's arc list and the opposite endpoints' adjacency
// lists. Any internal inconsistency is logged and swallowed into a false
// return rather than propagated.
func (g *Graph[S]) RemoveNode(n *Node[S]) bool {
	if n == nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodeIndex[n]; !ok {
		return false
	}

	incident := make([]*Arc[S], 0, len(n.outgoing)+len(n.incoming))
	incident = append(incident, n.outgoing...)
	incident = append(incident, n.incoming...)
	for _, a := range incident {
		if !g.removeArcLocked(a) {
			g.logger.Warn("graph: inconsistent adjacency while removing node", "position", n.position.String())
			return false
		}
	}

	removeNodeFromSlice(&g.nodes, n)
	delete(g.nodeIndex, n)
	n.graph = nil
	return true
}

// RemoveArc removes a from the arc list and from both endpoints'
// adjacency lists.
func (g *Graph[S]) RemoveArc(a *Arc[S]) bool {
	if a == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeArcLocked(a)
}

func (g *Graph[S]) removeArcLocked(a *Arc[S]) bool {
	if _, ok := g.arcIndex[a]; !ok {
		return false
	}
	removeArcFromSlice(&g.arcs, a)
	delete(g.arcIndex, a)
	removeArcFromSlice(&a.start.outgoing, a)
	removeArcFromSlice(&a.end.incoming, a)
	a.graph = nil
	return true
}

// Clear empties the graph's node and arc lists. It deliberately does not
// clear each node's own adjacency lists: callers are expected to discard
// the Graph and everything it references rather than reuse nodes
// afterward.
func (g *Graph[S]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = nil
	g.arcs = nil
	g.nodeIndex = make(map[*Node[S]]struct{})
	g.arcIndex = make(map[*Arc[S]]struct{})
}

// BoundingBox delegates to BoundingBox over all of the graph's nodes.
func (g *Graph[S]) BoundingBox() (min, max point3d.Point3D, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.nodes) == 0 {
		return point3d.Point3D{}, point3d.Point3D{}, ErrEmptyGraph
	}
	return BoundingBox(g.nodes)
}

// ClosestNode performs a linear scan returning the node minimizing
// Euclidean distance to p, and that distance. If ignorePassable is true,
// impassable nodes are skipped. Ties are resolved by insertion order: the
// first-encountered minimum wins.
func (g *Graph[S]) ClosestNode(p point3d.Point3D, ignorePassable bool) (*Node[S], float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best *Node[S]
	bestDist := 0.0
	for _, n := range g.nodes {
		if ignorePassable && !n.passable {
			continue
		}
		d := point3d.Distance(p, n.position)
		if best == nil || d < bestDist {
			best = n
			bestDist = d
		}
	}
	if best == nil {
		return nil, 0, ErrNoCandidate
	}
	return best, bestDist, nil
}

// ClosestArc performs a linear scan returning the arc minimizing the
// distance from p to the projection of p onto the infinite line through
// the arc's endpoints, and that distance. If ignorePassable is true,
// impassable arcs are skipped.
//
// Note: this measures distance to the infinite line, not to the segment
// between the endpoints, so the returned arc's foot-of-perpendicular may
// lie outside the segment; see DESIGN.md.
func (g *Graph[S]) ClosestArc(p point3d.Point3D, ignorePassable bool) (*Arc[S], float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best *Arc[S]
	bestDist := 0.0
	for _, a := range g.arcs {
		if ignorePassable && !a.passable {
			continue
		}
		foot := point3d.ProjectOnLine(p, a.start.position, a.end.position)
		d := point3d.Distance(p, foot)
		if best == nil || d < bestDist {
			best = a
			bestDist = d
		}
	}
	if best == nil {
		return nil, 0, ErrNoCandidate
	}
	return best, bestDist, nil
}
