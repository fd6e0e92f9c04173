package graph

import "errors"

// Sentinel errors for the graph package.
var (
	ErrNilNode              = errors.New("graph: node is nil")
	ErrNilArc               = errors.New("graph: arc is nil")
	ErrArcEndpointNotMember = errors.New("graph: arc endpoint is not a member of this graph")
	ErrEmptyNodeSet         = errors.New("graph: node collection is empty")
	ErrEmptyGraph           = errors.New("graph: graph has no nodes")
	ErrNoCandidate          = errors.New("graph: no candidate node or arc matched the query")
	ErrNegativeWeight       = errors.New("graph: arc weight must be non-negative")
)
