package graph

import (
	"testing"

	"github.com/nav3d/astargraph/point3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) (*Graph[string], *Node[string], *Node[string], *Node[string]) {
	t.Helper()
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	c := NewNode[string](point3d.New(1, 1, 0), "c")
	require.True(t, g.AddNode(a))
	require.True(t, g.AddNode(b))
	require.True(t, g.AddNode(c))
	return g, a, b, c
}

func TestAddNodeRejectsNilAndDuplicates(t *testing.T) {
	g := New[string](nil)
	assert.False(t, g.AddNode(nil))

	n := NewNode[string](point3d.New(0, 0, 0), "n")
	assert.True(t, g.AddNode(n))
	assert.False(t, g.AddNode(n))
	assert.Len(t, g.Nodes(), 1)
}

func TestAddArcRequiresMembership(t *testing.T) {
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	g.AddNode(a)
	// b never added

	arc, err := NewArc(a, b)
	require.NoError(t, err)

	ok, err := g.AddArc(arc)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrArcEndpointNotMember)
}

func TestAdjacencySymmetryInvariant(t *testing.T) {
	g, a, b, _ := buildTriangle(t)
	arc, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)

	found, err := a.ArcGoingTo(b)
	require.NoError(t, err)
	assert.Same(t, arc, found)

	foundIn, err := b.ArcComingFrom(a)
	require.NoError(t, err)
	assert.Same(t, arc, foundIn)
}

func TestRemoveNodeRemovesIncidentArcsEverywhere(t *testing.T) {
	g, a, b, c := buildTriangle(t)
	_, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)
	_, err = g.AddArcBetween(b, c, 1)
	require.NoError(t, err)
	_, err = g.AddArcBetween(c, a, 1)
	require.NoError(t, err)

	ok := g.RemoveNode(b)
	require.True(t, ok)

	assert.Len(t, g.Nodes(), 2)
	assert.Len(t, g.Arcs(), 1) // only c->a survives

	assert.Empty(t, a.OutgoingArcs())
	assert.Empty(t, c.IncomingArcs())
}

func TestRemoveNodeUnknownReturnsFalse(t *testing.T) {
	g := New[string](nil)
	n := NewNode[string](point3d.New(0, 0, 0), "n")
	assert.False(t, g.RemoveNode(n))
}

func TestClearEmptiesGraphButNotNodeAdjacency(t *testing.T) {
	g, a, b, _ := buildTriangle(t)
	_, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)

	g.Clear()

	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Arcs())
	// Documented: Clear does not reach into per-node adjacency lists.
	assert.Len(t, a.OutgoingArcs(), 1)
}

func TestBoundingBoxEmptyGraphFails(t *testing.T) {
	g := New[string](nil)
	_, _, err := g.BoundingBox()
	assert.ErrorIs(t, err, ErrEmptyGraph)
}

func TestBoundingBoxCollinearNodes(t *testing.T) {
	g := New[string](nil)
	g.AddNode(NewNode[string](point3d.New(0, 0, 0), "a"))
	g.AddNode(NewNode[string](point3d.New(5, 0, 0), "b"))
	g.AddNode(NewNode[string](point3d.New(10, 0, 0), "c"))

	min, max, err := g.BoundingBox()
	require.NoError(t, err)
	assert.Equal(t, point3d.New(0, 0, 0), min)
	assert.Equal(t, point3d.New(10, 0, 0), max)
}

func TestClosestNodeTiesResolveByInsertionOrder(t *testing.T) {
	g := New[string](nil)
	first := NewNode[string](point3d.New(1, 0, 0), "first")
	second := NewNode[string](point3d.New(-1, 0, 0), "second")
	g.AddNode(first)
	g.AddNode(second)

	best, dist, err := g.ClosestNode(point3d.New(0, 0, 0), false)
	require.NoError(t, err)
	assert.Same(t, first, best)
	assert.Equal(t, 1.0, dist)
}

func TestClosestNodeIgnorePassableSkipsImpassable(t *testing.T) {
	g := New[string](nil)
	near := NewNode[string](point3d.New(0.1, 0, 0), "near")
	near.SetPassable(false)
	far := NewNode[string](point3d.New(5, 0, 0), "far")
	g.AddNode(near)
	g.AddNode(far)

	best, _, err := g.ClosestNode(point3d.New(0, 0, 0), true)
	require.NoError(t, err)
	assert.Same(t, far, best)
}

func TestClosestNodeEmptyGraphFails(t *testing.T) {
	g := New[string](nil)
	_, _, err := g.ClosestNode(point3d.New(0, 0, 0), false)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestClosestArcUsesInfiniteLineProjection(t *testing.T) {
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	g.AddNode(a)
	g.AddNode(b)
	arc, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)

	// p projects outside the [a,b] segment but the infinite-line distance
	// is still small, matching the documented caveat.
	best, dist, err := g.ClosestArc(point3d.New(5, 0.5, 0), false)
	require.NoError(t, err)
	assert.Same(t, arc, best)
	assert.InDelta(t, 0.5, dist, 1e-9)
}

func TestDuplicateLogicalEdgesAllowed(t *testing.T) {
	g, a, b, _ := buildTriangle(t)
	first, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)
	second, err := g.AddArcBetween(a, b, 2)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Len(t, a.OutgoingArcs(), 2)
}
