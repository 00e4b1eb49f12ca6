package main

import (
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

var (
	colorWall     = color.Style{color.FgGray}
	colorReached  = color.Style{color.FgGreen}
	colorEndpoint = color.Style{color.FgRed, color.OpBold}
)

// render draws g row by row, styling walls, reached cells and the two
// endpoints. Unset cells print as blanks.
func render(g *gridgraph.Grid, dist map[gridgraph.Point]int, start, end gridgraph.Point) string {
	var b strings.Builder
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			v, err := g.At(i, j)
			if err != nil {
				b.WriteByte(' ')
				continue
			}
			p := gridgraph.Point{Row: i, Col: j}
			_, reached := dist[p]
			switch {
			case p == start || p == end:
				b.WriteString(colorEndpoint.Sprint(string(v)))
			case v == gridgraph.Wall:
				b.WriteString(colorWall.Sprint(string(v)))
			case reached:
				b.WriteString(colorReached.Sprint(string(v)))
			default:
				b.WriteRune(v)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
