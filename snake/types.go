// Package snake provides tunable options, result types, and error
// definitions for Hamiltonian-path search over a 2-D grid.
package snake

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathbound/gridsnake/grid"
)

// Sentinel errors for snake operations. ErrNoSolution is a normal,
// expected outcome of a valid request; the remaining sentinels signal
// caller errors detected before any search begins.
var (
	// ErrInvalidDims indicates grid dimensions with a non-positive side.
	ErrInvalidDims = errors.New("snake: grid dimensions must be positive")

	// ErrInvalidPosition indicates a start or end cell outside grid bounds.
	ErrInvalidPosition = errors.New("snake: position outside grid bounds")

	// ErrDegenerateRequest indicates start and end refer to the same cell.
	ErrDegenerateRequest = errors.New("snake: start and end positions must differ")

	// ErrUnknownStrategy indicates a Strategy value the engine does not implement.
	ErrUnknownStrategy = errors.New("snake: unknown strategy")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("snake: invalid option supplied")

	// ErrNoSolution indicates exhaustive search proved no Hamiltonian path
	// exists for the given start/end/dims.
	ErrNoSolution = errors.New("snake: no solution path exists")
)

// Strategy selects the search formulation. Both strategies explore the
// grid in the same direction order and return identical paths; they
// differ only in how backtracking state is kept.
type Strategy int

const (
	// Recursive backtracks through the native call stack.
	Recursive Strategy = iota
	// Iterative backtracks through an explicit frame stack.
	Iterative
)

// String returns the canonical lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a canonical name back to its Strategy value.
// Unrecognized names yield ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Path is the ordered sequence of cells a search visits, from start to
// end inclusive. A successful Solve returns a Path covering every grid
// cell exactly once, each consecutive pair one unit step apart.
type Path []grid.Cell

// Option configures Solve via functional arguments. An invalid Option
// (e.g. a non-unit direction) is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters customizing a search.
type Options struct {
	// Ctx allows cooperative cancellation of long searches. It is
	// consulted only at the safe points: recursive-call entry or the top
	// of the iterative frame loop.
	Ctx context.Context

	// Strategy picks the search formulation; Recursive by default.
	Strategy Strategy

	// Directions is the neighbor-trial order. It decides which of
	// possibly many Hamiltonian paths is returned first, so overriding
	// it changes the result, never its validity.
	Directions []grid.Direction

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Recursive strategy
//   - grid.DefaultDirections trial order
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Strategy:   Recursive,
		Directions: grid.DefaultDirections,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the search formulation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithDirections overrides the neighbor-trial order. The slice must hold
// exactly four distinct orthogonal unit steps; anything else is an
// option violation.
func WithDirections(dirs []grid.Direction) Option {
	return func(o *Options) {
		if len(dirs) != len(grid.DefaultDirections) {
			o.err = fmt.Errorf("%w: need exactly %d directions, got %d",
				ErrOptionViolation, len(grid.DefaultDirections), len(dirs))
			return
		}
		seen := make(map[grid.Direction]struct{}, len(dirs))
		for _, d := range dirs {
			if !d.IsUnit() {
				o.err = fmt.Errorf("%w: %v is not an orthogonal unit step", ErrOptionViolation, d)
				return
			}
			if _, dup := seen[d]; dup {
				o.err = fmt.Errorf("%w: duplicate direction %v", ErrOptionViolation, d)
				return
			}
			seen[d] = struct{}{}
		}
		o.Directions = dirs
	}
}
