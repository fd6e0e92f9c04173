// Package astar implements a tunable A* shortest-path search over a
// graph.Graph, interpolating between pure Dijkstra (cost only) and pure
// greedy best-first (heuristic only) behavior, plus a stepwise control
// surface for callers that want to drive the search from their own event
// loop.
package astar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nav3d/astargraph/astarmetrics"
	"github.com/nav3d/astargraph/graph"
	"github.com/nav3d/astargraph/point3d"
)

// AStar runs shortest-path searches over a single graph.Graph. A search
// is run once with SearchPath, or driven step by step with Initialize
// and NextStep. Searches on a single AStar value must not run
// concurrently; separate AStar values over the same graph may, since
// SearchPath takes the graph's exclusive lock for its own duration.
type AStar[S any] struct {
	g         *graph.Graph[S]
	heuristic Heuristic[S]
	balance   float64

	metrics *astarmetrics.Metrics
	logger  *slog.Logger

	target *graph.Node[S]
	open   *openSet[S]
	closed map[*graph.Node[S]]*Track[S]
	leaf   *Track[S]

	stepCounter int
}

// New builds an AStar engine over g. balance must be in [0,1]: 0 is pure
// heuristic (greedy best-first), 1 is pure Dijkstra, 0.5 is classical
// A*. If heuristic is nil, EuclideanHeuristic is used.
func New[S any](g *graph.Graph[S], heuristic Heuristic[S], balance float64) (*AStar[S], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if balance < 0 || balance > 1 {
		return nil, ErrInvalidBalance
	}
	if heuristic == nil {
		heuristic = EuclideanHeuristic[S]()
	}

	return &AStar[S]{
		g:           g,
		heuristic:   heuristic,
		balance:     balance,
		logger:      slog.Default(),
		stepCounter: -1,
	}, nil
}

// SetMetrics attaches a Prometheus-backed observer. Passing nil detaches
// it. Safe to call before or between searches, never during one.
func (a *AStar[S]) SetMetrics(m *astarmetrics.Metrics) { a.metrics = m }

// SetLogger overrides the engine's structured logger. If logger is nil,
// SetLogger is a no-op.
func (a *AStar[S]) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// evaluation computes balance*cost + (1-balance)*heuristic(endNode,
// target), the scalar the open set orders by. This lives on the engine,
// not on Track, so that target/balance/heuristic stay scoped to a single
// search rather than living as shared mutable state.
func (a *AStar[S]) evaluation(t *Track[S]) float64 {
	h := a.heuristic(t.EndNode, a.target)
	return a.balance*t.Cost + (1-a.balance)*h
}

// Initialize resets the engine's open and closed sets, binds the search
// target, and seeds the open set with the zero-cost start track.
func (a *AStar[S]) Initialize(start, end *graph.Node[S]) error {
	if start == nil || end == nil {
		return ErrNilNode
	}

	a.target = end
	a.open = newOpenSet[S]()
	a.closed = make(map[*graph.Node[S]]*Track[S])
	a.leaf = nil
	a.stepCounter = 0

	t0 := startTrack(start)
	a.open.Push(t0, a.evaluation(t0))
	return nil
}

// Initialized reports whether Initialize has been called.
func (a *AStar[S]) Initialized() bool { return a.stepCounter >= 0 }

// SearchStarted reports whether at least one NextStep has run.
func (a *AStar[S]) SearchStarted() bool { return a.stepCounter > 0 }

// SearchEnded reports whether the search has run to completion: started,
// and nothing left in the open set.
func (a *AStar[S]) SearchEnded() bool {
	return a.SearchStarted() && a.open != nil && a.open.Len() == 0
}

// PathFound reports whether a terminal track was found.
func (a *AStar[S]) PathFound() bool { return a.leaf != nil }

// NextStep advances the search by one expansion. It pops the open track
// with the minimum evaluation; if its end node is the target the search
// terminates successfully: the result is recorded, the open set is
// cleared, and NextStep returns true. Otherwise every passable outgoing
// arc to a passable node is used to build a successor track, which
// supersedes any strictly costlier track already open or closed for that
// end node and is discarded if one of equal or lower cost exists; the
// return value is then whether the open set is still non-empty.
func (a *AStar[S]) NextStep() (bool, error) {
	if !a.Initialized() {
		return false, ErrNotInitialized
	}
	if a.open.Len() == 0 {
		return false, nil
	}

	best := a.open.PopMin()
	t := best.track

	if graph.SameIdentity(t.EndNode, a.target) {
		a.leaf = t
		a.open.Clear()
		a.stepCounter++
		return true, nil
	}

	for _, arc := range t.EndNode.OutgoingArcs() {
		if !arc.Passable() || !arc.EndNode().Passable() {
			continue
		}
		a.propagate(t, arc)
	}

	a.closed[t.EndNode] = t
	a.stepCounter++
	return a.open.Len() > 0, nil
}

// propagate builds the successor track reached from t via arc and
// inserts it into the open set unless a cheaper-or-equal track for the
// same end node is already open or closed: presence in either map means
// discard, with no off-by-one on the first frontier slot.
func (a *AStar[S]) propagate(t *Track[S], arc *graph.Arc[S]) {
	successor := t.extend(arc)

	if c, ok := a.closed[successor.EndNode]; ok && c.Cost <= successor.Cost {
		return
	}
	if e, ok := a.open.Lookup(successor.EndNode); ok {
		if e.track.Cost <= successor.Cost {
			return
		}
		a.open.Remove(e)
	}
	delete(a.closed, successor.EndNode)
	a.open.Push(successor, a.evaluation(successor))
}

// SearchPath runs the search to completion in one call, holding the
// graph's exclusive lock for the duration so that concurrent mutation
// from another goroutine cannot interleave with expansion. Returns
// whether a path was found.
func (a *AStar[S]) SearchPath(start, end *graph.Node[S]) (bool, error) {
	if start == nil || end == nil {
		return false, ErrNilNode
	}

	a.g.Lock()
	defer a.g.Unlock()

	searchID := uuid.New()
	begin := time.Now()

	if err := a.Initialize(start, end); err != nil {
		return false, err
	}
	a.logger.Debug("astar: search started", "search_id", searchID)

	for {
		more, err := a.NextStep()
		if err != nil {
			return false, fmt.Errorf("astar: search %s: %w", searchID, err)
		}
		if !more {
			break
		}
		if a.PathFound() {
			break
		}
	}

	found := a.PathFound()
	outcome := astarmetrics.OutcomeNotFound
	if found {
		outcome = astarmetrics.OutcomeFound
	}
	if a.metrics != nil {
		a.metrics.ObserveSearch(outcome, a.stepCounter, time.Since(begin))
	}
	a.logger.Info("astar: search finished",
		"search_id", searchID,
		"found", found,
		"steps", a.stepCounter,
		"elapsed", time.Since(begin),
	)

	return found, nil
}

// SearchPathContext is SearchPath with cooperative cancellation: the
// expansion loop checks ctx between steps (never mid-step), matching the
// cooperative cancellation model described for the stepwise API. Unlike
// SearchPath, it assigns no search ID, emits no log lines, and does not
// report to attached Metrics.
func (a *AStar[S]) SearchPathContext(ctx context.Context, start, end *graph.Node[S]) (bool, error) {
	if start == nil || end == nil {
		return false, ErrNilNode
	}

	a.g.Lock()
	defer a.g.Unlock()

	if err := a.Initialize(start, end); err != nil {
		return false, err
	}

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		more, err := a.NextStep()
		if err != nil {
			return false, err
		}
		if !more || a.PathFound() {
			break
		}
	}

	return a.PathFound(), nil
}

// ResultInformation returns the number of arcs and total cost of the
// found path, or (-1, -1) if no path was found.
func (a *AStar[S]) ResultInformation() (int, float64) {
	if !a.PathFound() {
		return -1, -1
	}
	return a.leaf.NbArcsVisited, a.leaf.Cost
}

// PathByNodes reconstructs the found path as a node sequence from start
// to end inclusive. Requires the search to have ended; if it ended
// without finding a path, returns (nil, nil) rather than an error.
func (a *AStar[S]) PathByNodes() ([]*graph.Node[S], error) {
	if err := a.requireResult(); err != nil {
		return nil, err
	}
	if !a.PathFound() {
		return nil, nil
	}
	nodes := make([]*graph.Node[S], a.leaf.NbArcsVisited+1)
	i := len(nodes) - 1
	for t := a.leaf; t != nil; t = t.Parent {
		nodes[i] = t.EndNode
		i--
	}
	return nodes, nil
}

// PathByArcs reconstructs the found path as the sequence of arcs walked
// from start to end. Requires the search to have ended; if it ended
// without finding a path, returns (nil, nil) rather than an error.
//
// Tracks record nodes, not arcs, so each arc is looked up again with
// ArcGoingTo, which returns the first outgoing arc to the next node.
// Where several arcs join the same pair of nodes, the returned arc is
// that first one, which is not necessarily the one the search traversed.
func (a *AStar[S]) PathByArcs() ([]*graph.Arc[S], error) {
	if err := a.requireResult(); err != nil {
		return nil, err
	}
	if !a.PathFound() {
		return nil, nil
	}
	arcs := make([]*graph.Arc[S], a.leaf.NbArcsVisited)
	i := len(arcs) - 1
	for t := a.leaf; t.Parent != nil; t = t.Parent {
		arc, err := t.Parent.EndNode.ArcGoingTo(t.EndNode)
		if err != nil {
			return nil, err
		}
		arcs[i] = arc
		i--
	}
	return arcs, nil
}

// PathByCoordinates reconstructs the found path as a Point3D sequence.
// Requires the search to have ended; if it ended without finding a
// path, returns (nil, nil) rather than an error.
func (a *AStar[S]) PathByCoordinates() ([]point3d.Point3D, error) {
	nodes, err := a.PathByNodes()
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		return nil, nil
	}
	out := make([]point3d.Point3D, len(nodes))
	for i, n := range nodes {
		out[i] = n.Position()
	}
	return out, nil
}

// requireResult ensures the search has run to completion. Whether a
// path was actually found is not an error condition; callers check
// PathFound or the nil-ness of the reconstructed sequence instead.
func (a *AStar[S]) requireResult() error {
	if !a.SearchEnded() {
		return ErrSearchNotEnded
	}
	return nil
}

// Open returns a snapshot of the open set as node sequences, one per
// frontier entry, for debugging and introspection.
func (a *AStar[S]) Open() [][]*graph.Node[S] {
	return snapshotTracks(a.open.Snapshot())
}

// Closed returns a snapshot of the closed set as node sequences, one per
// expanded track, for debugging and introspection.
func (a *AStar[S]) Closed() [][]*graph.Node[S] {
	tracks := make([]*Track[S], 0, len(a.closed))
	for _, t := range a.closed {
		tracks = append(tracks, t)
	}
	return snapshotTracks(tracks)
}

func snapshotTracks[S any](tracks []*Track[S]) [][]*graph.Node[S] {
	out := make([][]*graph.Node[S], len(tracks))
	for i, t := range tracks {
		seq := make([]*graph.Node[S], t.NbArcsVisited+1)
		j := len(seq) - 1
		for c := t; c != nil; c = c.Parent {
			seq[j] = c.EndNode
			j--
		}
		out[i] = seq
	}
	return out
}
