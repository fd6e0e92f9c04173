package graph

import (
	"math"

	"github.com/nav3d/astargraph/point3d"
)

// EuclideanDistance returns the straight-line distance between two nodes'
// positions.
func EuclideanDistance[S any](a, b *Node[S]) float64 {
	return point3d.Distance(a.position, b.position)
}

// SquaredEuclideanDistance avoids the square root, useful for comparisons
// where only relative distance matters.
func SquaredEuclideanDistance[S any](a, b *Node[S]) float64 {
	dx := a.position.X() - b.position.X()
	dy := a.position.Y() - b.position.Y()
	dz := a.position.Z() - b.position.Z()
	return dx*dx + dy*dy + dz*dz
}

// ManhattanDistance returns the sum of absolute per-axis differences.
func ManhattanDistance[S any](a, b *Node[S]) float64 {
	return math.Abs(a.position.X()-b.position.X()) +
		math.Abs(a.position.Y()-b.position.Y()) +
		math.Abs(a.position.Z()-b.position.Z())
}

// ChebyshevDistance returns the maximum absolute per-axis difference.
func ChebyshevDistance[S any](a, b *Node[S]) float64 {
	dx := math.Abs(a.position.X() - b.position.X())
	dy := math.Abs(a.position.Y() - b.position.Y())
	dz := math.Abs(a.position.Z() - b.position.Z())
	return math.Max(dx, math.Max(dy, dz))
}

// BoundingBox returns the axis-aligned minimum and maximum corners over a
// non-empty collection of nodes. Fails if nodes is empty.
func BoundingBox[S any](nodes []*Node[S]) (min, max point3d.Point3D, err error) {
	if len(nodes) == 0 {
		return point3d.Point3D{}, point3d.Point3D{}, ErrEmptyNodeSet
	}

	first := nodes[0].position
	minX, minY, minZ := first.X(), first.Y(), first.Z()
	maxX, maxY, maxZ := minX, minY, minZ

	for _, n := range nodes[1:] {
		p := n.position
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		minZ = math.Min(minZ, p.Z())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
		maxZ = math.Max(maxZ, p.Z())
	}

	return point3d.New(minX, minY, minZ), point3d.New(maxX, maxY, maxZ), nil
}
