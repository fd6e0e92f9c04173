package astar

import "github.com/nav3d/astargraph/graph"

// Heuristic estimates the remaining cost from a node to the target. It
// must return a non-negative value to keep the engine's cost scale
// meaningful. With a balance other than 0.5 the returned path is of
// minimum cost only if the scaled heuristic stays consistent; the engine
// does not check this.
type Heuristic[S any] func(node, target *graph.Node[S]) float64

// EuclideanHeuristic estimates remaining cost as straight-line distance.
func EuclideanHeuristic[S any]() Heuristic[S] {
	return func(node, target *graph.Node[S]) float64 {
		return graph.EuclideanDistance(node, target)
	}
}

// ManhattanHeuristic estimates remaining cost as the sum of axis-aligned
// distances.
func ManhattanHeuristic[S any]() Heuristic[S] {
	return func(node, target *graph.Node[S]) float64 {
		return graph.ManhattanDistance(node, target)
	}
}

// ChebyshevHeuristic estimates remaining cost as the largest single-axis
// distance.
func ChebyshevHeuristic[S any]() Heuristic[S] {
	return func(node, target *graph.Node[S]) float64 {
		return graph.ChebyshevDistance(node, target)
	}
}
