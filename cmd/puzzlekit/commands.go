package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/puzzlekit/digraph"
	"github.com/katalvlaran/puzzlekit/gridgraph"
	"github.com/katalvlaran/puzzlekit/internal/input"
	"github.com/katalvlaran/puzzlekit/shape"
)

// errUnboundedWrap rejects a wraparound search with no distance cap: the
// tiling is infinite, so the search would never finish.
var errUnboundedWrap = errors.New("grid: -wrap needs -max")

// runGrid prints the step distance from the first S to the first E.
func runGrid(cfg config, lines []string, out io.Writer, log *logrus.Entry) error {
	if cfg.wrap && cfg.max == -1 {
		return errUnboundedWrap
	}
	g := input.Grid(lines)
	starts, ends := g.Where('S'), g.Where('E')
	if len(starts) == 0 || len(ends) == 0 {
		return errors.New("grid: need both an S and an E cell")
	}
	start, end := starts[0], ends[0]
	log.WithFields(logrus.Fields{
		"width": g.Width(), "height": g.Height(), "start": start, "end": end,
	}).Debug("grid parsed")

	var opts []gridgraph.Option
	if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts, gridgraph.WithOnVisit(func(p gridgraph.Point, d int) {
			log.WithFields(logrus.Fields{"p": p, "dist": d}).Trace("visit")
		}))
	}
	if cfg.wrap {
		opts = append(opts, gridgraph.WithWrapAround())
	}
	if cfg.max != -1 {
		opts = append(opts, gridgraph.WithMaxDistance(cfg.max))
	}

	dist, err := g.Dijkstra(start, opts...)
	if err != nil {
		return err
	}
	log.WithField("reached", len(dist)).Debug("search done")

	if cfg.color {
		fmt.Fprint(out, render(g, dist, start, end))
	}
	if d, ok := dist[end]; ok {
		fmt.Fprintf(out, "distance: %d\n", d)
	} else {
		fmt.Fprintln(out, "distance: unreachable")
	}

	return nil
}

// runRanges counts listed IDs covered by the ranges and the total coverage.
func runRanges(_ config, lines []string, out io.Writer, log *logrus.Entry) error {
	set, ids, err := input.Ranges(lines)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"ranges": set.NumRanges(), "ids": len(ids)}).Debug("ranges parsed")

	covered := 0
	for _, id := range ids {
		if set.InRange(id) {
			covered++
		}
	}
	fmt.Fprintf(out, "in range: %d\ntotal values: %d\n", covered, set.NumValues())

	return nil
}

// runPaths counts or lists the paths between -from and -to.
func runPaths(cfg config, lines []string, out io.Writer, log *logrus.Entry) error {
	g, err := input.Edges(lines)
	if err != nil {
		return err
	}
	via := splitList(cfg.via)
	log.WithFields(logrus.Fields{
		"nodes": g.NumNodes(), "edges": g.NumEdges(), "via": via,
	}).Debug("graph parsed")

	if !cfg.list {
		n, err := g.CountPathsVia(cfg.from, cfg.to, via...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "paths: %d\n", n)
		return nil
	}

	paths, err := g.AllUniquePaths(cfg.from, cfg.to, digraph.WithPathLimit(cfg.limit))
	if errors.Is(err, digraph.ErrPathLimit) {
		log.WithError(err).Warn("listing truncated")
	} else if err != nil {
		return err
	}
	for _, p := range paths {
		if visitsAll(p.Nodes, via) {
			fmt.Fprintf(out, "%d %s\n", p.Weight, strings.Join(p.Nodes, ","))
		}
	}

	return nil
}

func visitsAll(nodes, via []string) bool {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		seen[n] = true
	}
	for _, v := range via {
		if !seen[v] {
			return false
		}
	}
	return true
}

// runDig prints the lagoon size of a dig plan. Hex-decoded plans are too
// large to flood-fill and go through the shoelace formula instead.
func runDig(cfg config, lines []string, out io.Writer, log *logrus.Entry) error {
	plan, err := input.DigPlan(lines, cfg.hex)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"steps": len(plan), "hex": cfg.hex}).Debug("plan parsed")

	if cfg.hex {
		n, err := shape.Area(plan)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "lagoon: %d\n", n)
		return nil
	}

	s, err := shape.FromDigPlan(plan, shape.Point{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "lagoon: %d\n", s.NumInterior(false))

	return nil
}
