package astarconfig

import "errors"

// Sentinel errors for the astarconfig package.
var (
	ErrUnknownHeuristic = errors.New("astarconfig: unknown heuristic name")
)
