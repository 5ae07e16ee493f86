package grid

// Cell represents a single grid position by its row and column.
// It is an immutable value type; two Cells are equal iff both
// coordinates match.
type Cell struct {
	Row, Col int
}

// Step returns the neighbor of c one unit away along d.
func (c Cell) Step(d Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Dims describes the dimensions of a Rows×Cols grid. Valid coordinates
// span [0,Rows)×[0,Cols).
type Dims struct {
	Rows, Cols int
}

// Valid reports whether d describes a non-empty grid (both dimensions
// positive).
func (d Dims) Valid() bool {
	return d.Rows > 0 && d.Cols > 0
}

// Area returns the total number of cells, Rows×Cols.
func (d Dims) Area() int {
	return d.Rows * d.Cols
}

// Contains reports whether c lies within the grid bounds.
// Pure bounds check; no side effects.
func (d Dims) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < d.Rows && c.Col >= 0 && c.Col < d.Cols
}

// Index returns the row-major flat index of c, suitable for addressing
// a []bool or similar per-cell slice of length Area().
//
// Contract: d.Contains(c) must hold; Index performs no bounds check.
func (d Dims) Index(c Cell) int {
	return c.Row*d.Cols + c.Col
}

// Direction is one orthogonal unit step on the grid.
type Direction struct {
	DRow, DCol int
}

// IsUnit reports whether d is one of the four orthogonal unit steps.
func (d Direction) IsUnit() bool {
	return (d.DRow == 0) != (d.DCol == 0) &&
		d.DRow >= -1 && d.DRow <= 1 && d.DCol >= -1 && d.DCol <= 1
}

// The four orthogonal unit steps.
var (
	Down  = Direction{DRow: +1}
	Up    = Direction{DRow: -1}
	Right = Direction{DCol: +1}
	Left  = Direction{DCol: -1}
)

// DefaultDirections is the canonical search order: Down, Up, Right, Left.
// This order determines which Hamiltonian path is returned first when
// several exist, so it is part of the package contract; both search
// strategies consume it identically. Treat it as read-only.
var DefaultDirections = []Direction{Down, Up, Right, Left}
