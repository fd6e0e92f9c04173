package astar

import "errors"

// Sentinel errors for the astar package.
var (
	ErrNilNode        = errors.New("astar: start or end node is nil")
	ErrNilGraph       = errors.New("astar: graph is nil")
	ErrNilHeuristic   = errors.New("astar: heuristic is nil")
	ErrInvalidBalance = errors.New("astar: dijkstraHeuristicBalance must be in [0,1]")
	ErrNotInitialized = errors.New("astar: NextStep called before Initialize")
	ErrSearchNotEnded = errors.New("astar: result requested before the search ended")
)
