// Package astarconfig loads and validates the configuration options
// recognized on the AStar engine: which heuristic to use, and the
// Dijkstra/heuristic balance. Config is optional — callers may instead
// build an astar.AStar directly with astar.New — but it gives YAML-file
// deployments a validated shape to load from.
package astarconfig

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nav3d/astargraph/astar"
	"github.com/nav3d/astargraph/graph"
)

// Heuristic name constants recognized in YAML configuration.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
	HeuristicChebyshev = "chebyshev"
)

// configValidate is the shared validator instance, built once.
var configValidate = validator.New()

// Config is the YAML-loadable, validated shape of the engine's
// configuration options: heuristic choice and dijkstraHeuristicBalance.
// A zero Config is invalid; use Load or DefaultConfig.
type Config struct {
	Heuristic string  `yaml:"heuristic" validate:"required,oneof=euclidean manhattan chebyshev"`
	Balance   float64 `yaml:"dijkstra_heuristic_balance" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the baseline defaults: Euclidean heuristic,
// balance 0.5 (classical A*).
func DefaultConfig() Config {
	return Config{
		Heuristic: HeuristicEuclidean,
		Balance:   0.5,
	}
}

// Load reads and validates a YAML configuration file. Out-of-range
// balance values or an unrecognized heuristic name fail immediately
// rather than being silently clamped or defaulted.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("astarconfig: reading %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("astarconfig: parsing %s: %w", path, err)
	}

	if err := configValidate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("astarconfig: validating %s: %w", path, err)
	}
	return cfg, nil
}

// Heuristic resolves the configured heuristic name to an astar.Heuristic
// for payload type S. Only the three named heuristics are expressible in
// YAML; a user-supplied callable must be passed directly to astar.New.
func Heuristic[S any](cfg Config) (astar.Heuristic[S], error) {
	switch cfg.Heuristic {
	case HeuristicEuclidean:
		return astar.EuclideanHeuristic[S](), nil
	case HeuristicManhattan:
		return astar.ManhattanHeuristic[S](), nil
	case HeuristicChebyshev:
		return astar.ChebyshevHeuristic[S](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, cfg.Heuristic)
	}
}

// NewEngine builds an astar.AStar[S] over g from a validated Config.
func NewEngine[S any](g *graph.Graph[S], cfg Config) (*astar.AStar[S], error) {
	h, err := Heuristic[S](cfg)
	if err != nil {
		return nil, err
	}
	return astar.New(g, h, cfg.Balance)
}
