package snake

import (
	"strings"

	"github.com/pathbound/gridsnake/grid"
)

// Renderer glyphs. Grid points sit every 2nd line and 4th column so the
// diagram reads roughly square in a terminal.
const (
	glyphPoint = '○'
	glyphStart = 'S'
	glyphEnd   = 'E'
	glyphDown  = '↓'
	glyphUp    = '↑'
	glyphRight = '→'
	glyphLeft  = '←'
)

// Render draws path on a dims-sized grid as a text diagram of
// (2*Rows−1) lines, each (4*Cols−3) runes wide: unvisited points as ○,
// the path endpoints as S and E, and each path edge as a directional
// arrow between its cells. Lines are space padded to full width and
// joined with "\n", without a trailing newline.
//
// Render is pure formatting and never fails; an empty or nil path
// renders as the empty string. It does not validate the path beyond
// using cell coordinates, so feed it only paths produced by Solve.
//
// Complexity: O(Rows×Cols) time and memory.
func Render(path Path, dims grid.Dims) string {
	if len(path) == 0 {
		return ""
	}

	lines, width := 2*dims.Rows-1, 4*dims.Cols-3
	canvas := make([][]rune, lines)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Grid points on every 2nd line, 4th column.
	for r := 0; r < dims.Rows; r++ {
		for c := 0; c < dims.Cols; c++ {
			canvas[2*r][4*c] = glyphPoint
		}
	}

	// Endpoints overwrite their points.
	canvas[2*path[0].Row][4*path[0].Col] = glyphStart
	last := path[len(path)-1]
	canvas[2*last.Row][4*last.Col] = glyphEnd

	// Each edge draws one arrow offset from its source point: one line
	// down/up for vertical steps, two runes right/left for horizontal.
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		d := grid.Direction{DRow: to.Row - from.Row, DCol: to.Col - from.Col}
		line, col := 2*from.Row+d.DRow, 4*from.Col+2*d.DCol
		switch d {
		case grid.Down:
			canvas[line][col] = glyphDown
		case grid.Up:
			canvas[line][col] = glyphUp
		case grid.Right:
			canvas[line][col] = glyphRight
		case grid.Left:
			canvas[line][col] = glyphLeft
		}
	}

	var b strings.Builder
	for i, line := range canvas {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}

	return b.String()
}
