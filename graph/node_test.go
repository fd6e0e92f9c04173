package graph

import (
	"testing"

	"github.com/nav3d/astargraph/point3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSetPassableCascadesToArcs(t *testing.T) {
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	g.AddNode(a)
	g.AddNode(b)
	out, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)
	in, err := g.AddArcBetween(b, a, 1)
	require.NoError(t, err)

	a.SetPassable(false)
	assert.False(t, a.Passable())
	assert.False(t, out.Passable())
	assert.False(t, in.Passable())
}

func TestNodeArcGoingToAndComingFrom(t *testing.T) {
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	c := NewNode[string](point3d.New(2, 0, 0), "c")
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	ab, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)

	found, err := a.ArcGoingTo(b)
	require.NoError(t, err)
	assert.Same(t, ab, found)

	found, err = a.ArcGoingTo(c)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = b.ArcComingFrom(a)
	require.NoError(t, err)
	assert.Same(t, ab, found)

	_, err = a.ArcGoingTo(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestNodeIsolateClearsAdjacencyButNotGraphArcs(t *testing.T) {
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	g.AddNode(a)
	g.AddNode(b)
	_, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)

	b.Isolate()

	assert.Empty(t, a.OutgoingArcs())
	assert.Empty(t, b.IncomingArcs())
	// The documented (open-question) asymmetry: the graph's own arc list
	// is untouched by Isolate.
	assert.Len(t, g.Arcs(), 1)
}

func TestAccessibleAccessingMolecule(t *testing.T) {
	g := New[string](nil)
	a := NewNode[string](point3d.New(0, 0, 0), "a")
	b := NewNode[string](point3d.New(1, 0, 0), "b")
	c := NewNode[string](point3d.New(2, 0, 0), "c")
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)
	_, err := g.AddArcBetween(a, b, 1)
	require.NoError(t, err)
	_, err = g.AddArcBetween(c, a, 1)
	require.NoError(t, err)

	assert.Equal(t, []*Node[string]{b}, a.AccessibleNodes())
	assert.Equal(t, []*Node[string]{c}, a.AccessingNodes())
	assert.Len(t, a.Molecule(), 3)
}

func TestSamePositionVsSameIdentity(t *testing.T) {
	a := NewNode[string](point3d.New(1, 1, 1), "a")
	b := NewNode[string](point3d.New(1, 1, 1), "b")

	assert.True(t, a.SamePosition(b))
	assert.False(t, SameIdentity(a, b))
	assert.True(t, SameIdentity(a, a))
}
