package astar

import (
	"container/heap"

	"github.com/nav3d/astargraph/graph"
)

// openEntry pairs a Track with its precomputed evaluation for the heap,
// and records its heap index so the engine can remove a superseded entry
// in O(log n) via heap.Remove instead of a linear scan.
type openEntry[S any] struct {
	track *Track[S]
	eval  float64
	index int
}

// openSet is a typed priority queue ordered by evaluation (ascending),
// paired with a hashmap from end node to the current open entry for that
// node, giving O(log n) heap operations and O(1) membership checks (see
// DESIGN.md).
type openSet[S any] struct {
	heap  openHeap[S]
	byEnd map[*graph.Node[S]]*openEntry[S]
}

func newOpenSet[S any]() *openSet[S] {
	return &openSet[S]{
		byEnd: make(map[*graph.Node[S]]*openEntry[S]),
	}
}

func (s *openSet[S]) Len() int { return len(s.heap) }

// Lookup returns the current open entry for endNode, and whether one
// exists. Presence in the map is presence, regardless of heap position —
// see DESIGN.md on the reopening-logic fix this replaces.
func (s *openSet[S]) Lookup(endNode *graph.Node[S]) (*openEntry[S], bool) {
	e, ok := s.byEnd[endNode]
	return e, ok
}

func (s *openSet[S]) Push(track *Track[S], eval float64) {
	e := &openEntry[S]{track: track, eval: eval}
	heap.Push(&s.heap, e)
	s.byEnd[track.EndNode] = e
}

// Remove evicts e from both the heap and the lookup map.
func (s *openSet[S]) Remove(e *openEntry[S]) {
	heap.Remove(&s.heap, e.index)
	delete(s.byEnd, e.track.EndNode)
}

// PopMin removes and returns the entry with the smallest evaluation.
// Ties are broken deterministically for a given sequence of pushes and
// pops, but not by insertion order: container/heap is not stable, so
// among equal evaluations a later-pushed entry can come out first.
func (s *openSet[S]) PopMin() *openEntry[S] {
	e := heap.Pop(&s.heap).(*openEntry[S])
	delete(s.byEnd, e.track.EndNode)
	return e
}

func (s *openSet[S]) Clear() {
	s.heap = nil
	s.byEnd = make(map[*graph.Node[S]]*openEntry[S])
}

// Snapshot returns every track currently open, in heap storage order.
func (s *openSet[S]) Snapshot() []*Track[S] {
	out := make([]*Track[S], len(s.heap))
	for i, e := range s.heap {
		out[i] = e.track
	}
	return out
}

// openHeap implements container/heap.Interface over openEntry pointers.
type openHeap[S any] []*openEntry[S]

func (h openHeap[S]) Len() int            { return len(h) }
func (h openHeap[S]) Less(i, j int) bool  { return h[i].eval < h[j].eval }
func (h openHeap[S]) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *openHeap[S]) Push(x any) {
	e := x.(*openEntry[S])
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *openHeap[S]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
