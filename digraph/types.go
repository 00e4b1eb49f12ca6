// Package digraph defines core types, configuration options and sentinel
// errors for the directed weighted graph of github.com/katalvlaran/puzzlekit.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight  if InsertEdge is given a weight below zero.
//	– ErrNodeNotFound    if a query names a node the graph has never seen.
//	– ErrCycleDetected   if an ordering or path count meets a cycle.
//	– ErrPathLimit       if path enumeration exceeds its expansion budget.
//	– ErrOptionViolation if an option carries an invalid value.
package digraph

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by digraph operations.
var (
	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrNodeNotFound indicates that the requested node does not exist in the graph,
	// or, for ShortestPath, that it cannot be reached.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrCycleDetected indicates a cycle where an acyclic structure is required.
	ErrCycleDetected = errors.New("digraph: cycle detected")

	// ErrPathLimit indicates AllUniquePaths stopped after its expansion budget.
	ErrPathLimit = errors.New("digraph: path expansion limit reached")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("digraph: invalid option supplied")
)

// Node is the constraint on node identifiers: comparable for map keys and
// totally ordered for deterministic priority-queue tie-breaking.
type Node interface {
	constraints.Ordered
}

// Edge identifies the directed edge From→To.
type Edge[N Node] struct {
	From, To N
}

// Path is a sequence of nodes and its accumulated edge weight.
type Path[N Node] struct {
	Weight int64
	Nodes  []N
}

// Options configures the behavior of Dijkstra.
//
// MaxDistance – vertices whose distance would exceed this are not recorded.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnVisit – hook invoked once per node when its distance becomes final.
type Options[N Node] struct {
	MaxDistance int64
	OnVisit     func(n N, dist int64)

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option[N Node] func(*Options[N])

// DefaultOptions returns Options with no distance cap and a no-op hook.
func DefaultOptions[N Node]() Options[N] {
	return Options[N]{
		MaxDistance: math.MaxInt64,
		OnVisit:     func(N, int64) {},
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxDistance[N Node](max int64) Option[N] {
	return func(o *Options[N]) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnVisit installs fn as the finalize hook.
func WithOnVisit[N Node](fn func(n N, dist int64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// PathOptions configures AllUniquePaths.
type PathOptions struct {
	// Limit caps how many partial paths are expanded. 0 means no limit.
	Limit int

	err error
}

// PathOption represents a functional option for AllUniquePaths.
type PathOption func(*PathOptions)

// WithPathLimit bounds the number of partial paths AllUniquePaths expands,
// guarding against exponential blowup on dense graphs.
func WithPathLimit(limit int) PathOption {
	return func(o *PathOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: path limit must be non-negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.Limit = limit
	}
}
