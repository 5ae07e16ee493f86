package snake_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathbound/gridsnake/grid"
	"github.com/pathbound/gridsnake/snake"
)

// TestRender_Line1x4 pins the exact diagram for the unique 1×4 path.
func TestRender_Line1x4(t *testing.T) {
	path := snake.Path{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
	}
	got := snake.Render(path, grid.Dims{Rows: 1, Cols: 4})
	require.Equal(t, "S → ○ → ○ → E", got)
}

// TestRender_Geometry checks the diagram contract on a solved 5×5 grid:
// (2*rows−1) lines of (4*cols−3) runes, exactly one S and one E, and one
// arrow per path edge.
func TestRender_Geometry(t *testing.T) {
	var (
		start = grid.Cell{Row: 0, Col: 0}
		end   = grid.Cell{Row: 0, Col: 3}
		dims  = grid.Dims{Rows: 5, Cols: 5}
	)
	path, err := snake.Solve(start, end, dims)
	require.NoError(t, err)

	out := snake.Render(path, dims)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2*dims.Rows-1)
	for i, line := range lines {
		require.Len(t, []rune(line), 4*dims.Cols-3, "line %d width", i)
	}

	var starts, ends, arrows, points int
	for _, r := range out {
		switch r {
		case 'S':
			starts++
		case 'E':
			ends++
		case '↓', '↑', '→', '←':
			arrows++
		case '○':
			points++
		}
	}
	require.Equal(t, 1, starts, "exactly one S glyph")
	require.Equal(t, 1, ends, "exactly one E glyph")
	require.Equal(t, len(path)-1, arrows, "one arrow per path edge")
	require.Equal(t, dims.Area()-2, points, "every non-endpoint cell keeps its point")
}

// TestRender_EmptyPath documents the empty-path choice: empty string.
func TestRender_EmptyPath(t *testing.T) {
	require.Empty(t, snake.Render(nil, grid.Dims{Rows: 3, Cols: 3}))
	require.Empty(t, snake.Render(snake.Path{}, grid.Dims{Rows: 3, Cols: 3}))
}

// TestRender_ArrowPlacement verifies each arrow sits midway between its
// cells on a hand-checked 2×3 path.
func TestRender_ArrowPlacement(t *testing.T) {
	path := snake.Path{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
	}
	want := strings.Join([]string{
		"S → ○ → ○",
		"        ↓",
		"E ← ○ ← ○",
	}, "\n")
	require.Equal(t, want, snake.Render(path, grid.Dims{Rows: 2, Cols: 3}))
}
