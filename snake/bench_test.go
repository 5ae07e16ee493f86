package snake_test

import (
	"testing"

	"github.com/pathbound/gridsnake/grid"
	"github.com/pathbound/gridsnake/snake"
)

// benchSolve measures one strategy on the documented 5×5 request.
// Each iteration is a complete search: the engine allocates and discards
// its visited set and path per call, so there is no setup to hoist
// beyond the constant inputs below.
func benchSolve(b *testing.B, strat snake.Strategy) {
	var (
		start = grid.Cell{Row: 0, Col: 0}
		end   = grid.Cell{Row: 0, Col: 3}
		dims  = grid.Dims{Rows: 5, Cols: 5}
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Errors are impossible here: the request is valid and solvable.
		_, _ = snake.Solve(start, end, dims, snake.WithStrategy(strat))
	}
}

// BenchmarkSolve_Recursive5x5 benchmarks the call-stack strategy.
func BenchmarkSolve_Recursive5x5(b *testing.B) {
	benchSolve(b, snake.Recursive)
}

// BenchmarkSolve_Iterative5x5 benchmarks the frame-stack strategy.
func BenchmarkSolve_Iterative5x5(b *testing.B) {
	benchSolve(b, snake.Iterative)
}

// BenchmarkSolve_NoSolution2x2 benchmarks full search-space exhaustion
// on the smallest unsolvable request, per strategy.
func BenchmarkSolve_NoSolution2x2(b *testing.B) {
	var (
		start = grid.Cell{Row: 0, Col: 0}
		end   = grid.Cell{Row: 1, Col: 1}
		dims  = grid.Dims{Rows: 2, Cols: 2}
	)
	for _, strat := range allStrategies {
		b.Run(strat.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = snake.Solve(start, end, dims, snake.WithStrategy(strat))
			}
		})
	}
}

// BenchmarkRender5x5 benchmarks diagram construction with the search
// hoisted out of the timed loop.
func BenchmarkRender5x5(b *testing.B) {
	dims := grid.Dims{Rows: 5, Cols: 5}
	path, err := snake.Solve(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 3}, dims)
	if err != nil {
		b.Fatalf("Solve error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = snake.Render(path, dims)
	}
}
