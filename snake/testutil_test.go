package snake_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathbound/gridsnake/grid"
	"github.com/pathbound/gridsnake/snake"
)

// requireValidPath asserts the full success postcondition: exact cover
// of the grid, correct endpoints, and unit steps between neighbors.
func requireValidPath(t *testing.T, path snake.Path, start, end grid.Cell, dims grid.Dims) {
	t.Helper()

	require.Len(t, path, dims.Area(), "path must cover every cell")
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, end, path[len(path)-1], "path must end at end")

	seen := make(map[grid.Cell]struct{}, len(path))
	for i, c := range path {
		require.True(t, dims.Contains(c), "cell %v at index %d out of bounds", c, i)
		_, dup := seen[c]
		require.False(t, dup, "cell %v revisited at index %d", c, i)
		seen[c] = struct{}{}

		if i == 0 {
			continue
		}
		step := grid.Direction{
			DRow: c.Row - path[i-1].Row,
			DCol: c.Col - path[i-1].Col,
		}
		require.True(t, step.IsUnit(), "step %v→%v at index %d is not a unit move", path[i-1], c, i)
	}
}

// allStrategies enumerates both formulations for sweep-style tests.
var allStrategies = []snake.Strategy{snake.Recursive, snake.Iterative}
