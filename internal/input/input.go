// Package input parses puzzle text into the puzzlekit data structures.
// Every parse error wraps ErrMalformed and names the offending line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlekit/digraph"
	"github.com/katalvlaran/puzzlekit/gridgraph"
	"github.com/katalvlaran/puzzlekit/rangeset"
	"github.com/katalvlaran/puzzlekit/shape"
)

// ErrMalformed indicates input that does not match the expected format.
var ErrMalformed = errors.New("input: malformed line")

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w %d: %s", ErrMalformed, line+1, fmt.Sprintf(format, args...))
}

// Lines reads r to the end and returns its lines without line terminators.
func Lines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return out, nil
}

// Grid builds a grid with row i, column j holding lines[i][j].
func Grid(lines []string) *gridgraph.Grid {
	return gridgraph.FromRows(lines)
}

// Ranges parses "lo-hi" lines up to the first blank line into a set,
// followed by one integer per line.
//
//	3-5
//	10-14
//
//	5
//	17
func Ranges(lines []string) (*rangeset.Set, []int64, error) {
	set := rangeset.New()
	i := 0
	for ; i < len(lines) && lines[i] != ""; i++ {
		a, b, ok := strings.Cut(lines[i], "-")
		if !ok {
			return nil, nil, malformed(i, "want lo-hi, got %q", lines[i])
		}
		lo, err1 := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		hi, err2 := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
		if err := errors.Join(err1, err2); err != nil {
			return nil, nil, malformed(i, "%v", err)
		}
		if err := set.AddRange(lo, hi-lo); err != nil {
			return nil, nil, malformed(i, "%v", err)
		}
	}

	var ids []int64
	for i++; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(lines[i]), 10, 64)
		if err != nil {
			return nil, nil, malformed(i, "%v", err)
		}
		ids = append(ids, id)
	}

	return set, ids, nil
}

// Edges parses "node: succ succ ..." lines into a graph with unit weights.
// An optional "=w" suffix on a successor sets its weight ("b=4").
func Edges(lines []string) (*digraph.Graph[string], error) {
	g := digraph.New[string]()
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		from, rest, ok := strings.Cut(line, ":")
		from = strings.TrimSpace(from)
		if !ok || from == "" {
			return nil, malformed(i, "want node: successors, got %q", line)
		}
		for _, f := range strings.Fields(rest) {
			to, ws, weighted := strings.Cut(f, "=")
			w := int64(1)
			if weighted {
				var err error
				if w, err = strconv.ParseInt(ws, 10, 64); err != nil {
					return nil, malformed(i, "weight of %s: %v", to, err)
				}
			}
			if err := g.InsertEdge(from, to, w); err != nil {
				return nil, malformed(i, "%v", err)
			}
		}
	}

	return g, nil
}

// DigPlan parses "R 6 (#70c710)" lines. With fromColor set, the step is
// decoded from the hex code instead: five hex digits of distance followed
// by one digit selecting R, D, L or U.
func DigPlan(lines []string, fromColor bool) ([]shape.Step, error) {
	plan := make([]shape.Step, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 || (fromColor && len(f) < 3) {
			return nil, malformed(i, "want DIR N (#rrggbb), got %q", line)
		}

		var step shape.Step
		if fromColor {
			hex := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
			if len(hex) != 6 || hex[5] < '0' || hex[5] > '3' {
				return nil, malformed(i, "bad color %q", f[2])
			}
			n, err := strconv.ParseInt(hex[:5], 16, 64)
			if err != nil {
				return nil, malformed(i, "%v", err)
			}
			step = shape.Step{Dir: "RDLU"[hex[5]-'0'], N: int(n)}
		} else {
			if len(f[0]) != 1 {
				return nil, malformed(i, "bad direction %q", f[0])
			}
			n, err := strconv.Atoi(f[1])
			if err != nil {
				return nil, malformed(i, "%v", err)
			}
			step = shape.Step{Dir: f[0][0], N: n}
		}
		plan = append(plan, step)
	}

	return plan, nil
}
