package snake

import "github.com/pathbound/gridsnake/grid"

// searchState drives the explicit-stack formulation.
// Exploring=0 (top frame has untried directions), Backtracking=1 (top
// frame exhausted), Success and Exhausted are terminal.
type searchState int

const (
	stateExploring searchState = iota
	stateBacktracking
	stateSuccess
	stateExhausted
)

// frame is the explicit counterpart of one recursive activation record:
// the cell being explored plus the index of the next direction to try.
type frame struct {
	cell grid.Cell
	dir  int
}

// solveIterative runs the frame-stack formulation. It performs the same
// mark/unmark and push/pop operations as the recursive strategy, in the
// same order, so both return the identical path for identical inputs.
func solveIterative(start, end grid.Cell, dims grid.Dims, o Options) (Path, error) {
	var (
		area    = dims.Area()
		visited = make([]bool, area)
		path    = make(Path, 0, area)
		stack   = make([]frame, 0, area)
		state   = stateExploring
	)

	// Initial state: start committed, direction index 0.
	visited[dims.Index(start)] = true
	path = append(path, start)
	stack = append(stack, frame{cell: start})

	for {
		// 1) Top-of-loop checks: cancellation (the single safe point),
		//    then the terminal success condition, both before direction
		//    dispatch.
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		top := &stack[len(stack)-1]
		if top.cell == end && len(path) == area {
			state = stateSuccess
		} else if top.dir >= len(o.Directions) {
			state = stateBacktracking
		}

		switch state {
		case stateSuccess:
			return path, nil

		case stateBacktracking:
			// 2) Undo the top commitment: unmark, pop from path and stack.
			visited[dims.Index(top.cell)] = false
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]

			if len(stack) == 0 {
				state = stateExhausted
				return nil, ErrNoSolution
			}

			// 3) The parent resumes with its next direction.
			stack[len(stack)-1].dir++
			state = stateExploring

		case stateExploring:
			// 4) Probe the current direction; off-grid or visited
			//    neighbors just advance the index in place.
			next := top.cell.Step(o.Directions[top.dir])
			if !dims.Contains(next) || visited[dims.Index(next)] {
				top.dir++
				continue
			}

			// 5) Valid new cell: commit it and push a fresh frame.
			visited[dims.Index(next)] = true
			path = append(path, next)
			stack = append(stack, frame{cell: next})
		}
	}
}
