package snake

import (
	"fmt"

	"github.com/pathbound/gridsnake/grid"
)

// Solve searches for a Hamiltonian path from start to end on a
// dims-sized grid and routes to the strategy chosen via opts.
//
// Contracts:
//   - dims must be positive on both sides (ErrInvalidDims).
//   - start and end must lie in bounds (ErrInvalidPosition) and differ
//     (ErrDegenerateRequest); note a 1×1 grid can never satisfy this.
//   - Options must be well formed (ErrOptionViolation).
//
// On success the returned path has length dims.Area(), begins at start,
// ends at end, visits every cell exactly once, and each consecutive
// pair differs by one direction step. ErrNoSolution reports that the
// exhaustive search ruled out every candidate; it is a normal outcome,
// separable from the caller errors above via errors.Is.
//
// Determinism: for fixed start, end, dims and direction order, repeated
// calls return the identical path regardless of strategy.
//
// Complexity: worst case exponential in dims.Area() (exhaustive
// backtracking with visited pruning); Memory: O(dims.Area()).
func Solve(start, end grid.Cell, dims grid.Dims, opts ...Option) (Path, error) {
	// Stage 1 - options. Invalid options win over everything else.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Stage 2 - preconditions, surfaced before any search state exists.
	if !dims.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDims, dims.Rows, dims.Cols)
	}
	if !dims.Contains(start) {
		return nil, fmt.Errorf("%w: start %v on %dx%d grid", ErrInvalidPosition, start, dims.Rows, dims.Cols)
	}
	if !dims.Contains(end) {
		return nil, fmt.Errorf("%w: end %v on %dx%d grid", ErrInvalidPosition, end, dims.Rows, dims.Cols)
	}
	if start == end {
		return nil, ErrDegenerateRequest
	}

	// Stage 3 - route by strategy. Each run owns a fresh visited set and
	// path; nothing survives the call.
	switch o.Strategy {
	case Recursive:
		return solveRecursive(start, end, dims, o)
	case Iterative:
		return solveIterative(start, end, dims, o)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
}
