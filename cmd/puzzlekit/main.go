// Command puzzlekit runs the puzzlekit searches over a puzzle input file.
//
// Usage:
//
//	puzzlekit grid   [-wrap] [-max N] [-color] FILE
//	puzzlekit ranges FILE
//	puzzlekit paths  [-from A] [-to B] [-via X,Y] [-list] [-limit N] FILE
//	puzzlekit dig    [-hex] FILE
//
// Flags must precede FILE. -v enables debug logging on stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/puzzlekit/internal/input"
)

var errUsage = errors.New("usage: puzzlekit <grid|ranges|paths|dig> [flags] FILE")

// config holds every flag; each command reads the ones it needs.
type config struct {
	verbose bool
	color   bool
	wrap    bool
	max     int
	from    string
	to      string
	via     string
	list    bool
	limit   int
	hex     bool
}

type command func(cfg config, lines []string, out io.Writer, log *logrus.Entry) error

var commands = map[string]command{
	"grid":   runGrid,
	"ranges": runRanges,
	"paths":  runPaths,
	"dig":    runDig,
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logrus.WithError(err).Error("puzzlekit failed")
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	var cfg config
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.color, "color", false, "grid: render the grid with reached cells highlighted")
	fs.BoolVar(&cfg.wrap, "wrap", false, "grid: neighbors wrap around the edges")
	fs.IntVar(&cfg.max, "max", -1, "grid: maximum search distance (-1 for none)")
	fs.StringVar(&cfg.from, "from", "you", "paths: start node")
	fs.StringVar(&cfg.to, "to", "out", "paths: end node")
	fs.StringVar(&cfg.via, "via", "", "paths: comma-separated nodes every path must visit")
	fs.BoolVar(&cfg.list, "list", false, "paths: print every path instead of counting")
	fs.IntVar(&cfg.limit, "limit", 0, "paths: with -list, stop after this many expansions (0 for none)")
	fs.BoolVar(&cfg.hex, "hex", false, "dig: decode steps from the color codes")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	log := newLogger(stderr, cfg.verbose).WithFields(logrus.Fields{
		"cmd":  args[0],
		"file": fs.Arg(0),
	})

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()
	lines, err := input.Lines(f)
	if err != nil {
		return err
	}
	log.WithField("lines", len(lines)).Debug("input loaded")

	return cmd(cfg, lines, stdout, log)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
