// Package point3d implements the minimal 3D coordinate contract that the
// graph and astar packages depend on. In a larger system this would be
// supplied by a shared geometry module; here it is defined locally since
// that module is out of scope.
package point3d

import (
	"fmt"
	"math"
)

// Point3D is an immutable triple of double-precision coordinates.
type Point3D struct {
	x, y, z float64
}

// New builds a Point3D from its three coordinates.
func New(x, y, z float64) Point3D {
	return Point3D{x: x, y: y, z: z}
}

// X returns the first coordinate.
func (p Point3D) X() float64 { return p.x }

// Y returns the second coordinate.
func (p Point3D) Y() float64 { return p.y }

// Z returns the third coordinate.
func (p Point3D) Z() float64 { return p.z }

// Axis returns the coordinate at the given axis index (0=X, 1=Y, 2=Z).
// Panics if i is outside [0,2]; callers are expected to pass a constant.
func (p Point3D) Axis(i int) float64 {
	switch i {
	case 0:
		return p.x
	case 1:
		return p.y
	case 2:
		return p.z
	default:
		panic(fmt.Sprintf("point3d: axis index out of range: %d", i))
	}
}

// Equal reports whether p and q have identical coordinate triples.
func (p Point3D) Equal(q Point3D) bool {
	return p.x == q.x && p.y == q.y && p.z == q.z
}

// String renders a human-readable representation.
func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.x, p.y, p.z)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point3D) float64 {
	dx := a.x - b.x
	dy := a.y - b.y
	dz := a.z - b.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ProjectOnLine returns the foot of the perpendicular dropped from p onto
// the infinite line through a and b. If a and b coincide, either endpoint
// is a valid answer and a is returned.
func ProjectOnLine(p, a, b Point3D) Point3D {
	dx := b.x - a.x
	dy := b.y - a.y
	dz := b.z - a.z

	lenSq := dx*dx + dy*dy + dz*dz
	if lenSq == 0 {
		return a
	}

	t := ((p.x-a.x)*dx + (p.y-a.y)*dy + (p.z-a.z)*dz) / lenSq
	return Point3D{
		x: a.x + t*dx,
		y: a.y + t*dy,
		z: a.z + t*dz,
	}
}
