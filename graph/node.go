package graph

import "github.com/nav3d/astargraph/point3d"

// Node is a vertex in 3D space carrying an opaque payload of type S.
// Nodes are created with NewNode and only become part of a Graph's
// bookkeeping once passed to Graph.AddNode.
//
// Two Nodes are "the same position" iff their Point3D values compare
// equal (see SamePosition); library internals never rely on that notion
// for adjacency bookkeeping, which always compares by Go pointer
// identity (see SameIdentity).
type Node[S any] struct {
	graph *Graph[S]

	position point3d.Point3D
	passable bool
	payload  S

	outgoing []*Arc[S]
	incoming []*Arc[S]
}

// NewNode builds a standalone node at the given position carrying payload.
// The node is not part of any Graph until passed to Graph.AddNode.
func NewNode[S any](position point3d.Point3D, payload S) *Node[S] {
	return &Node[S]{
		position: position,
		passable: true,
		payload:  payload,
	}
}

// Position returns the node's current location.
func (n *Node[S]) Position() point3d.Point3D { return n.position }

// SetPosition moves the node and invalidates the cached length of every
// incident arc.
func (n *Node[S]) SetPosition(p point3d.Point3D) {
	n.position = p
	for _, a := range n.outgoing {
		a.invalidateLength()
	}
	for _, a := range n.incoming {
		a.invalidateLength()
	}
}

// Passable reports whether the search should consider this node.
func (n *Node[S]) Passable() bool { return n.passable }

// SetPassable sets the node's passability and cascades the same value to
// every incident arc's passable flag before storing it locally.
func (n *Node[S]) SetPassable(v bool) {
	for _, a := range n.outgoing {
		a.SetPassable(v)
	}
	for _, a := range n.incoming {
		a.SetPassable(v)
	}
	n.passable = v
}

// Payload returns the opaque value stored at construction.
func (n *Node[S]) Payload() S { return n.payload }

// OutgoingArcs returns the node's outgoing arcs in insertion order. The
// returned slice is a copy; mutating it does not affect the node.
func (n *Node[S]) OutgoingArcs() []*Arc[S] {
	out := make([]*Arc[S], len(n.outgoing))
	copy(out, n.outgoing)
	return out
}

// IncomingArcs returns the node's incoming arcs in insertion order. The
// returned slice is a copy; mutating it does not affect the node.
func (n *Node[S]) IncomingArcs() []*Arc[S] {
	out := make([]*Arc[S], len(n.incoming))
	copy(out, n.incoming)
	return out
}

// Isolate removes this node from every opposite endpoint's adjacency list
// and clears its own adjacency lists. It does NOT remove the node's
// incident arcs from the owning Graph's arc list; see DESIGN.md.
func (n *Node[S]) Isolate() {
	for _, a := range n.outgoing {
		removeArcFromSlice(&a.end.incoming, a)
	}
	for _, a := range n.incoming {
		removeArcFromSlice(&a.start.outgoing, a)
	}
	n.outgoing = nil
	n.incoming = nil
}

// ArcGoingTo returns the first outgoing arc whose end node is target,
// compared by identity, or nil if none exists. Fails if target is nil.
func (n *Node[S]) ArcGoingTo(target *Node[S]) (*Arc[S], error) {
	if target == nil {
		return nil, ErrNilNode
	}
	for _, a := range n.outgoing {
		if a.end == target {
			return a, nil
		}
	}
	return nil, nil
}

// ArcComingFrom returns the first incoming arc whose start node is
// source, compared by identity, or nil if none exists. Fails if source
// is nil.
func (n *Node[S]) ArcComingFrom(source *Node[S]) (*Arc[S], error) {
	if source == nil {
		return nil, ErrNilNode
	}
	for _, a := range n.incoming {
		if a.start == source {
			return a, nil
		}
	}
	return nil, nil
}

// AccessibleNodes returns the end node of every outgoing arc, in
// outgoing-arc order.
func (n *Node[S]) AccessibleNodes() []*Node[S] {
	out := make([]*Node[S], len(n.outgoing))
	for i, a := range n.outgoing {
		out[i] = a.end
	}
	return out
}

// AccessingNodes returns the start node of every incoming arc, in
// incoming-arc order.
func (n *Node[S]) AccessingNodes() []*Node[S] {
	out := make([]*Node[S], len(n.incoming))
	for i, a := range n.incoming {
		out[i] = a.start
	}
	return out
}

// Molecule returns AccessibleNodes, AccessingNodes, and the node itself,
// concatenated in that order.
func (n *Node[S]) Molecule() []*Node[S] {
	out := make([]*Node[S], 0, len(n.outgoing)+len(n.incoming)+1)
	out = append(out, n.AccessibleNodes()...)
	out = append(out, n.AccessingNodes()...)
	out = append(out, n)
	return out
}

// SamePosition reports whether n and other occupy the same point in
// space. This is the geometric equality mentioned in the package docs;
// it is never used internally for adjacency bookkeeping.
func (n *Node[S]) SamePosition(other *Node[S]) bool {
	if other == nil {
		return false
	}
	return n.position.Equal(other.position)
}

// SameIdentity reports whether a and b are the same Node value (Go
// pointer identity). All adjacency and frontier bookkeeping in this
// module uses this notion, never SamePosition.
func SameIdentity[S any](a, b *Node[S]) bool {
	return a == b
}

func removeArcFromSlice[S any](arcs *[]*Arc[S], target *Arc[S]) {
	s := *arcs
	for i, a := range s {
		if a == target {
			*arcs = append(s[:i], s[i+1:]...)
			return
		}
	}
}

func removeNodeFromSlice[S any](nodes *[]*Node[S], target *Node[S]) {
	s := *nodes
	for i, n := range s {
		if n == target {
			*nodes = append(s[:i], s[i+1:]...)
			return
		}
	}
}
