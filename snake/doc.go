// Package snake finds Hamiltonian paths on 2-D 4-connected grids: a
// sequence of cells, each one unit step from the next, visiting every
// cell exactly once from a given start to a given end.
//
// What:
//
//   - Solve runs an exhaustive depth-first backtracking search and
//     returns the first path found under the configured direction order,
//     or ErrNoSolution once the whole search space is ruled out.
//   - Two interchangeable strategies: Recursive (native call stack) and
//     Iterative (explicit frame-stack state machine). For identical
//     inputs both return the identical path.
//   - Render draws a found path as a glyph diagram (○/S/E points joined
//     by ↓ ↑ → ← arrows).
//
// Why:
//
//   - Puzzle and level generation: snake paths that cover a board.
//   - A worked, cross-checked pair of backtracking formulations: the
//     iterative strategy reproduces the call stack's automatic undo with
//     explicit mark/unmark and push/pop, and the tests hold the two to
//     bit-identical outputs.
//
// Complexity:
//
//   - Worst case exponential in Rows×Cols (exhaustive search with
//     visited-set pruning); Memory: O(Rows×Cols) per call.
//   - Each call owns its visited set and path; nothing is shared or
//     retained between calls.
//
// Options:
//
//   - WithStrategy: Recursive (default) or Iterative.
//   - WithDirections: override the documented trial order
//     (grid.DefaultDirections) with four distinct unit steps.
//   - WithContext: cooperative cancellation, consulted only at the safe
//     points of each strategy.
//
// Errors:
//
//   - ErrInvalidDims: non-positive grid dimensions.
//   - ErrInvalidPosition: start or end outside grid bounds.
//   - ErrDegenerateRequest: start equals end.
//   - ErrUnknownStrategy: unrecognized Strategy value.
//   - ErrOptionViolation: malformed Option (bad direction set).
//   - ErrNoSolution: valid request, exhaustively proven unsolvable.
package snake
