package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// offsets4 lists the N, E, S, W neighbor offsets as (dx, dy).
var offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a rectangular maze. It is immutable once built.
// Cells are stored row-major.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid constructs a Grid from a non-empty, rectangular set of rows.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, and a wrapped
// ErrUnknownCell naming the first byte outside the alphabet.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			c := Cell(row[x])
			if !c.Valid() {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownCell, row[x], x, y)
			}
			cells = append(cells, c)
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Parse reads a maze from r, one row per line. Carriage returns are
// stripped and trailing blank lines ignored; validation is that of NewGrid.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return NewGrid(rows)
}

// ParseString is Parse over a string literal.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x,y). Out-of-bounds coordinates read as a wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return WallByte
	}
	return g.cells[g.Index(x, y)]
}

// CellAt returns the cell at row-major index idx.
func (g *Grid) CellAt(idx int) Cell {
	return g.cells[idx]
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// NeighborOffsets returns the 4-directional (dx, dy) offsets in N, E, S, W order.
// The returned slice must not be modified.
func (g *Grid) NeighborOffsets() [][2]int {
	return offsets4
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Entrances returns the row-major indices of all entrance cells in scan order.
func (g *Grid) Entrances() []int {
	var out []int
	for i, c := range g.cells {
		if c.Kind() == Entrance {
			out = append(out, i)
		}
	}
	return out
}

// Keys returns the set of every key present in the grid.
func (g *Grid) Keys() KeySet {
	return g.collect(Key)
}

// Doors returns the set of every door letter present in the grid.
func (g *Grid) Doors() KeySet {
	return g.collect(Door)
}

func (g *Grid) collect(k Kind) KeySet {
	var set KeySet
	for _, c := range g.cells {
		if c.Kind() == k {
			set |= c.Bit()
		}
	}
	return set
}

// Rows returns a copy of the grid as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range rows {
		row := make([]byte, g.width)
		for x := range row {
			row[x] = byte(g.cells[g.Index(x, y)])
		}
		rows[y] = string(row)
	}
	return rows
}

// String renders the grid with a newline after every row.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}
