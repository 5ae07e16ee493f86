package snake

import (
	"context"

	"github.com/pathbound/gridsnake/grid"
)

// recursiveSearch carries the mutable state of one recursive solve.
// The visited slice and path are owned exclusively by this search;
// outside the committed path prefix every visited entry is false.
type recursiveSearch struct {
	end     grid.Cell
	dims    grid.Dims
	dirs    []grid.Direction
	area    int
	ctx     context.Context
	visited []bool
	path    Path
}

// solveRecursive runs the call-stack formulation. Backtracking is the
// native stack unwind: each walk frame restores exactly the mutations
// it applied before failing.
func solveRecursive(start, end grid.Cell, dims grid.Dims, o Options) (Path, error) {
	s := &recursiveSearch{
		end:     end,
		dims:    dims,
		dirs:    o.Directions,
		area:    dims.Area(),
		ctx:     o.Ctx,
		visited: make([]bool, dims.Area()),
		path:    make(Path, 0, dims.Area()),
	}

	found, err := s.walk(start)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSolution
	}

	return s.path, nil
}

// walk extends the path into cell c, exploring each direction in order.
// Returns (true, nil) once the full path is committed; on (false, nil)
// the visited set and path are bit-for-bit as they were on entry.
func (s *recursiveSearch) walk(c grid.Cell) (bool, error) {
	// 1) Cancellation check on entry: the only safe point, since the
	//    state is consistent between frames.
	if err := s.ctx.Err(); err != nil {
		return false, err
	}

	// 2) Prune: off-grid or already on the path.
	if !s.dims.Contains(c) {
		return false, nil
	}
	idx := s.dims.Index(c)
	if s.visited[idx] {
		return false, nil
	}

	// 3) Commit c tentatively: mark visited, append to the path.
	s.visited[idx] = true
	s.path = append(s.path, c)

	// 4) Terminal check. The path holds every cell at most once, so its
	//    length doubles as the visited count.
	if c == s.end && len(s.path) == s.area {
		return true, nil
	}

	// 5) Try each direction in the fixed order; first success wins and
	//    propagates without trying the rest.
	for _, d := range s.dirs {
		found, err := s.walk(c.Step(d))
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// 6) Dead end: undo in exact reverse order of step 3 so the parent's
	//    remaining directions observe the pre-call state.
	s.path = s.path[:len(s.path)-1]
	s.visited[idx] = false

	return false, nil
}
