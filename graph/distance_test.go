package graph

import (
	"testing"

	"github.com/nav3d/astargraph/point3d"
	"github.com/stretchr/testify/assert"
)

func TestDistanceHelpersSymmetricAndNonNegative(t *testing.T) {
	u := NewNode[string](point3d.New(0, 0, 0), "u")
	v := NewNode[string](point3d.New(3, 4, 0), "v")

	assert.Equal(t, EuclideanDistance(u, v), EuclideanDistance(v, u))
	assert.Equal(t, 5.0, EuclideanDistance(u, v))
	assert.Equal(t, 25.0, SquaredEuclideanDistance(u, v))
	assert.Equal(t, 7.0, ManhattanDistance(u, v))
	assert.Equal(t, 4.0, ChebyshevDistance(u, v))
}

func TestDistanceZeroIffSamePosition(t *testing.T) {
	u := NewNode[string](point3d.New(1, 2, 3), "u")
	v := NewNode[string](point3d.New(1, 2, 3), "v")
	w := NewNode[string](point3d.New(1, 2, 4), "w")

	assert.Equal(t, 0.0, EuclideanDistance(u, v))
	assert.NotEqual(t, 0.0, EuclideanDistance(u, w))
}

func TestBoundingBoxFailsOnEmpty(t *testing.T) {
	_, _, err := BoundingBox[string](nil)
	assert.ErrorIs(t, err, ErrEmptyNodeSet)
}
